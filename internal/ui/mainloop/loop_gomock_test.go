package mainloop_test

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/bnema/fontview/internal/ui/mainloop"
	mock_mainloop "github.com/bnema/fontview/internal/ui/mainloop/mocks"
)

func TestCoalescer_PostsOncePerQueuedKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	loop := mock_mainloop.NewMockMainLoop(ctrl)

	var queued []func()
	loop.EXPECT().Post(gomock.Any()).Times(2).Do(func(fn func()) {
		queued = append(queued, fn)
	})

	c := mainloop.NewCoalescer(loop.Post)
	runs := map[string]int{}
	c.Post("rebuild", func() { runs["rebuild"]++ })
	c.Post("rebuild", func() { runs["rebuild"]++ })
	c.Post("watch", func() { runs["watch"]++ })

	if len(queued) != 2 {
		t.Fatalf("expected 2 posted tasks, got %d", len(queued))
	}
	for _, fn := range queued {
		fn()
	}
	if runs["rebuild"] != 1 || runs["watch"] != 1 {
		t.Fatalf("unexpected runs: %v", runs)
	}
}

func TestCoalescer_DestroyedPostsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	loop := mock_mainloop.NewMockMainLoop(ctrl)

	c := mainloop.NewCoalescer(loop.Post)
	c.Destroy()
	c.Post("rebuild", func() { t.Fatal("ran after Destroy") })
}

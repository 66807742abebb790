package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bnema/fontview/internal/infrastructure/watcher"
)

type recorder struct {
	mu     sync.Mutex
	events []watcher.Event
	paths  []string
}

func (r *recorder) record(ev watcher.Event, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	r.paths = append(r.paths, path)
}

func (r *recorder) Events() []watcher.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]watcher.Event(nil), r.events...)
}

var _ = DescribeTable("Classify",
	func(op fsnotify.Op, want watcher.Event) {
		Expect(watcher.Classify(op)).To(Equal(want))
	},
	Entry("create", fsnotify.Create, watcher.EventCreated),
	Entry("remove", fsnotify.Remove, watcher.EventDeleted),
	Entry("rename", fsnotify.Rename, watcher.EventDeleted),
	Entry("write", fsnotify.Write, watcher.EventChangesDone),
	Entry("chmod", fsnotify.Chmod, watcher.EventIgnored),
	Entry("create and write", fsnotify.Create|fsnotify.Write, watcher.EventCreated),
)

var _ = Describe("Directory", func() {
	var (
		dir    string
		rec    *recorder
		w      *watcher.Directory
		ctx    context.Context
		cancel context.CancelFunc
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "fontview-watch-*")
		Expect(err).NotTo(HaveOccurred())

		ctx, cancel = context.WithCancel(context.Background())
		rec = &recorder{}
		w = watcher.New(watcher.WithOnChange(rec.record))
	})

	AfterEach(func() {
		Expect(w.Stop()).To(Succeed())
		cancel()
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	It("reports a new font file as created", func() {
		Expect(w.Start(ctx, []string{dir})).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, "new.ttf"), []byte("x"), 0o600)).To(Succeed())

		Eventually(rec.Events, 2*time.Second, 20*time.Millisecond).Should(ContainElement(watcher.EventCreated))
	})

	It("reports a removed font file as deleted", func() {
		path := filepath.Join(dir, "old.ttf")
		Expect(os.WriteFile(path, []byte("x"), 0o600)).To(Succeed())
		Expect(w.Start(ctx, []string{dir})).To(Succeed())

		Expect(os.Remove(path)).To(Succeed())
		Eventually(rec.Events, 2*time.Second, 20*time.Millisecond).Should(ContainElement(watcher.EventDeleted))
	})

	It("skips directories that do not exist", func() {
		missing := filepath.Join(dir, "missing")
		Expect(w.Start(ctx, []string{missing, dir})).To(Succeed())
		Expect(w.Dirs()).To(Equal([]string{dir}))
	})

	It("refuses to start twice", func() {
		Expect(w.Start(ctx, []string{dir})).To(Succeed())
		Expect(w.Start(ctx, []string{dir})).To(MatchError(watcher.ErrAlreadyStarted))
	})

	It("stops delivering events after Stop", func() {
		Expect(w.Start(ctx, []string{dir})).To(Succeed())
		Expect(w.Stop()).To(Succeed())

		Expect(os.WriteFile(filepath.Join(dir, "late.ttf"), []byte("x"), 0o600)).To(Succeed())
		Consistently(rec.Events, 200*time.Millisecond, 20*time.Millisecond).Should(BeEmpty())
	})
})

// Package xdg exposes the application's XDG directories through port.XDGPaths.
package xdg

import (
	"github.com/bnema/fontview/internal/application/port"
	"github.com/bnema/fontview/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths using config.GetXDGDirs().
type Adapter struct{}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ConfigDir() (string, error) {
	return a.pick(func(d *config.XDGDirs) string { return d.ConfigHome })
}

func (a *Adapter) DataDir() (string, error) {
	return a.pick(func(d *config.XDGDirs) string { return d.DataHome })
}

func (a *Adapter) StateDir() (string, error) {
	return a.pick(func(d *config.XDGDirs) string { return d.StateHome })
}

func (a *Adapter) CacheDir() (string, error) {
	return a.pick(func(d *config.XDGDirs) string { return d.CacheHome })
}

// ThumbnailDir returns the shared freedesktop thumbnail root.
func (a *Adapter) ThumbnailDir() (string, error) {
	return a.pick(func(d *config.XDGDirs) string { return d.Thumbnails })
}

func (*Adapter) pick(field func(*config.XDGDirs) string) (string, error) {
	dirs, err := config.GetXDGDirs()
	if err != nil {
		return "", err
	}
	return field(dirs), nil
}

var _ port.XDGPaths = (*Adapter)(nil)

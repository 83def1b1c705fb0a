// Copyright 2026 The Latte Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// templateFS implements a file system that reads the files in a directory
// and reports the files, opened at least once, that have been written.
type templateFS struct {
	root    string
	fsys    fs.FS
	watcher *fsnotify.Watcher
	changed chan string
	done    chan struct{}
	Errors  chan error

	sync.Mutex
	watched map[string]bool
}

func newTemplateFS(root string) (*templateFS, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := &templateFS{
		root:    root,
		fsys:    os.DirFS(root),
		watcher: watcher,
		watched: map[string]bool{},
		changed: make(chan string),
		done:    make(chan struct{}),
		Errors:  make(chan error),
	}
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				name, err := filepath.Rel(root, event.Name)
				if err != nil {
					continue
				}
				select {
				case dir.changed <- filepath.ToSlash(name):
				case <-dir.done:
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				select {
				case dir.Errors <- err:
				case <-dir.done:
					return
				}
			}
		}
	}()
	return dir, nil
}

// Changed returns the channel that receives the names of the written files.
func (t *templateFS) Changed() <-chan string {
	return t.changed
}

// Close stops watching the files.
func (t *templateFS) Close() error {
	close(t.done)
	return t.watcher.Close()
}

func (t *templateFS) Open(name string) (fs.File, error) {
	f, err := t.fsys.Open(name)
	if err != nil {
		return nil, err
	}
	err = t.watch(name)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

func (t *templateFS) ReadFile(name string) ([]byte, error) {
	err := t.watch(name)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(t.fsys, name)
}

func (t *templateFS) watch(name string) error {
	t.Lock()
	defer t.Unlock()
	if !t.watched[name] {
		err := t.watcher.Add(filepath.Join(t.root, filepath.FromSlash(name)))
		if err != nil {
			return err
		}
		t.watched[name] = true
	}
	return nil
}

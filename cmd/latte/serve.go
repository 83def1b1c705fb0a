// Copyright 2026 The Latte Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"path"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/open2b/scriggo"
	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	"go.uber.org/zap"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve [dir]",
	Short: "Serve the templates of a directory",
	Long: `Serve runs a web server that renders the .html and .md templates of the
directory and serves the other files as they are. Markdown templates are
converted to HTML. A template is rebuilt when one of its files is written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		addr := conf.Serve.Addr
		if serveAddr != "" {
			addr = serveAddr
		}
		data, err := loadData(dataPath())
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, dir, addr, data)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "address to listen on, overrides the configuration")
	serveCmd.Flags().StringVar(&dataFile, "data", "", "data file (YAML or JSON), overrides the configuration")
}

// serve serves the templates in dir on addr until ctx is done.
func serve(ctx context.Context, dir, addr string, data map[string]interface{}) error {

	fsys, err := newTemplateFS(dir)
	if err != nil {
		return err
	}
	defer fsys.Close()

	md := newMarkdown(conf)
	srv := newServer(fsys, http.FileServer(http.Dir(dir)), newBuildOptions(conf, md, data), md)
	go srv.watch(ctx)

	s := &http.Server{
		Addr:           addr,
		Handler:        srv,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.Shutdown(shutdownCtx)
	}()

	logger.Info("web server started", zap.String("addr", addr), zap.String("dir", dir))

	err = s.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

type server struct {
	fsys   *templateFS
	static http.Handler
	opts   *scriggo.BuildOptions
	md     goldmark.Markdown

	sync.Mutex
	templates map[string]*scriggo.Template
}

func newServer(fsys *templateFS, static http.Handler, opts *scriggo.BuildOptions, md goldmark.Markdown) *server {
	return &server{
		fsys:      fsys,
		static:    static,
		opts:      opts,
		md:        md,
		templates: map[string]*scriggo.Template{},
	}
}

// watch evicts the built templates when a file changes. It returns when
// ctx is done.
func (srv *server) watch(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case name := <-srv.fsys.Changed():
			// A changed file can be extended, imported or rendered by any
			// template.
			srv.Lock()
			srv.templates = map[string]*scriggo.Template{}
			srv.Unlock()
			logger.Debug("file changed", zap.String("file", name))
		case err := <-srv.fsys.Errors:
			logger.Error("cannot watch files", zap.Error(err))
		}
	}
}

// template returns the named template, building it if it is not cached.
func (srv *server) template(name string) (*scriggo.Template, error) {
	srv.Lock()
	template, ok := srv.templates[name]
	srv.Unlock()
	if ok {
		return template, nil
	}
	start := time.Now()
	template, err := scriggo.BuildTemplate(srv.fsys, name, srv.opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("template built", zap.String("template", name), zap.Duration("time", time.Since(start)))
	srv.Lock()
	srv.templates[name] = template
	srv.Unlock()
	return template, nil
}

func (srv *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {

	name := strings.TrimPrefix(r.URL.Path, "/")
	if name == "" || strings.HasSuffix(name, "/") {
		name += "index.html"
	}

	ext := path.Ext(name)
	if ext != ".html" && ext != ".md" {
		srv.static.ServeHTTP(w, r)
		return
	}

	template, err := srv.template(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.NotFound(w, r)
			return
		}
		var e *scriggo.BuildError
		if errors.As(err, &e) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprintf(w, "%s", err)
			return
		}
		logger.Error("cannot build template", zap.String("template", name), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var b bytes.Buffer
	start := time.Now()
	err = template.Run(&b, nil, nil)
	if err != nil {
		logger.Error("cannot render template", zap.String("template", name), zap.Error(err))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, "%s", err)
		return
	}
	if ext == ".md" {
		var out bytes.Buffer
		err = srv.md.Convert(b.Bytes(), &out)
		if err != nil {
			logger.Error("cannot convert Markdown", zap.String("template", name), zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		b = out
	}
	logger.Debug("template rendered", zap.String("template", name), zap.Duration("time", time.Since(start)))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err = b.WriteTo(w)
	if err != nil {
		logger.Error("cannot write response", zap.String("template", name), zap.Error(err))
	}
}

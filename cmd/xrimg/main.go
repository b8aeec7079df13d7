// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command xrimg builds and inspects augmented image databases.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"

	"github.com/go-xr/xr/base/iox/imagex"
	"github.com/go-xr/xr/base/iox/tomlx"
	"github.com/go-xr/xr/base/logx"
	"github.com/go-xr/xr/imagedb"
	"github.com/go-xr/xr/vision"
)

func main() {
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}
	command := flag.Arg(0)
	args := flag.Args()[1:]

	var err error
	switch command {
	case "build-db":
		err = handleBuildDB(args)
	case "eval-img":
		err = handleEvalImg(args)
	case "list-db":
		err = handleListDB(args)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		logx.PrintError(err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`xrimg - augmented image database tool

Usage: xrimg <command> [options]

Commands:
  build-db   Build a database from a YAML manifest of images
  eval-img   Score an image's suitability as a tracking reference
  list-db    List the entries of a database file
  help       Show this help message

Common Flags:
  -config <file>   TOML file presetting flags; command-line flags win

Examples:
  xrimg build-db -manifest posters/images.yaml -out posters.imgdb
  xrimg build-db -manifest posters/images.yaml -watch
  xrimg eval-img -img poster.png
  xrimg list-db -db posters.imgdb`)
}

// applyConfig presets flags from a TOML file whose keys match flag
// names. Flags given on the command line win; keys that do not name a
// flag of this command are ignored.
func applyConfig(fs *flag.FlagSet, path string) error {
	if path == "" {
		return nil
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	var cfg map[string]any
	if err := tomlx.Open(&cfg, path); err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for name, val := range cfg {
		if set[name] || fs.Lookup(name) == nil || name == "config" {
			continue
		}
		if err := fs.Set(name, fmt.Sprint(val)); err != nil {
			return fmt.Errorf("config key %s: %w", name, err)
		}
	}
	return nil
}

func handleBuildDB(args []string) error {
	fs := flag.NewFlagSet("build-db", flag.ExitOnError)
	configFile := fs.String("config", "", "TOML config file presetting these flags")
	manifest := fs.String("manifest", "", "YAML manifest listing the images (required)")
	out := fs.String("out", "", "output database file (default images"+imagedb.Ext+" next to the manifest)")
	watch := fs.Bool("watch", false, "rebuild on manifest or image changes until interrupted")
	fs.Parse(args)
	if err := applyConfig(fs, *configFile); err != nil {
		return err
	}
	if *manifest == "" {
		fmt.Fprintln(os.Stderr, "build-db: -manifest is required")
		fs.Usage()
		os.Exit(1)
	}
	man, err := homedir.Expand(*manifest)
	if err != nil {
		return err
	}
	outPath, err := homedir.Expand(*out)
	if err != nil {
		return err
	}
	if outPath == "" {
		outPath = filepath.Join(filepath.Dir(man), "images"+imagedb.Ext)
	}
	if err := buildDB(man, outPath); err != nil {
		return err
	}
	if !*watch {
		return nil
	}
	return watchAndRebuild(man, outPath)
}

func buildDB(manifest, out string) error {
	db, err := imagedb.BuildFromManifest(manifest)
	if err != nil {
		return err
	}
	for i, name := range db.Names() {
		score := imagedb.Score(db.Entry(i).Gray)
		if score < imagedb.GoodScore {
			logx.PrintfWarn("%s: quality %.0f is below %d, tracking may be unreliable",
				name, score, imagedb.GoodScore)
		}
	}
	if err := db.Save(out); err != nil {
		return err
	}
	logx.PrintfInfo("wrote %s: %d images", out, db.Len())
	return nil
}

// watchDebounce coalesces bursts of file events, as editors and image
// exports often write a file several times in quick succession.
const watchDebounce = 200 * time.Millisecond

// watchAndRebuild rebuilds the database whenever the manifest or any
// listed image's directory changes, until interrupted.
func watchAndRebuild(manifest, out string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	dirs := map[string]bool{filepath.Dir(manifest): true}
	if man, err := imagedb.OpenManifest(manifest); err == nil {
		for _, me := range man {
			path := me.Path
			if !filepath.IsAbs(path) {
				path = filepath.Join(filepath.Dir(manifest), path)
			}
			dirs[filepath.Dir(path)] = true
		}
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	logx.PrintfInfo("watching %d directories, ctrl-c to stop", len(dirs))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	outAbs := filepath.Clean(out)
	var debounce *time.Timer
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) == outAbs {
				continue // our own output
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			logx.PrintfDebug("change: %s %s", ev.Op, ev.Name)
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, func() {
				if err := buildDB(manifest, out); err != nil {
					logx.PrintError(err)
				}
			})
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logx.PrintError(err)
		}
	}
}

func handleEvalImg(args []string) error {
	fs := flag.NewFlagSet("eval-img", flag.ExitOnError)
	configFile := fs.String("config", "", "TOML config file presetting these flags")
	img := fs.String("img", "", "image file to score (required)")
	fs.Parse(args)
	if err := applyConfig(fs, *configFile); err != nil {
		return err
	}
	if *img == "" {
		fmt.Fprintln(os.Stderr, "eval-img: -img is required")
		fs.Usage()
		os.Exit(1)
	}
	path, err := homedir.Expand(*img)
	if err != nil {
		return err
	}
	im, _, err := imagex.Open(path)
	if err != nil {
		return err
	}
	sz := im.Bounds().Size()
	score := imagedb.Score(vision.Grayscale(im))
	fmt.Printf("%s: %dx%d, quality %.0f/100\n", path, sz.X, sz.Y, score)
	if sz.X < imagedb.MinDim || sz.Y < imagedb.MinDim {
		logx.PrintfWarn("image is smaller than %d px on a side and will be rejected by build-db", imagedb.MinDim)
	}
	if score < imagedb.GoodScore {
		logx.PrintfWarn("quality below %d: add contrast and detail for reliable tracking", imagedb.GoodScore)
	}
	return nil
}

func handleListDB(args []string) error {
	fs := flag.NewFlagSet("list-db", flag.ExitOnError)
	configFile := fs.String("config", "", "TOML config file presetting these flags")
	dbFile := fs.String("db", "", "database file to list (required)")
	fs.Parse(args)
	if err := applyConfig(fs, *configFile); err != nil {
		return err
	}
	if *dbFile == "" {
		fmt.Fprintln(os.Stderr, "list-db: -db is required")
		fs.Usage()
		os.Exit(1)
	}
	path, err := homedir.Expand(*dbFile)
	if err != nil {
		return err
	}
	db, err := imagedb.Load(path)
	if err != nil {
		return err
	}
	fmt.Printf("%5s  %-24s  %-11s  %s\n", "index", "name", "dims", "width-m")
	for i := 0; i < db.Len(); i++ {
		e := db.Entry(i)
		wm := "-"
		if e.WidthMeters > 0 {
			wm = fmt.Sprintf("%.3f", e.WidthMeters)
		}
		fmt.Printf("%5d  %-24s  %-11s  %s\n", i, e.Name, fmt.Sprintf("%dx%d", e.FullW, e.FullH), wm)
	}
	return nil
}

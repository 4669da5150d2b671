/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Command analyze runs the corpus analysis over a directory of PDF files:
//
//	analyze [-loglevel level] [-workers n] <input-dir> <output-dir>
//
// For every PDF that decodes, <output-dir>/<docid>.xml holds the
// reconstructed page structure; <output-dir>/universal_blocks.xml holds the
// corpus-wide universal-block report; <output-dir>/images/ holds one copy
// of every distinct embedded image, keyed by content hash.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/giahung24/ccm-migration/common"
	"github.com/giahung24/ccm-migration/corpus"
	"github.com/giahung24/ccm-migration/pdfsource"
	"github.com/giahung24/ccm-migration/xmlexport"
)

var logLevels = map[string]common.LogLevel{
	"trace":   common.LogLevelTrace,
	"debug":   common.LogLevelDebug,
	"info":    common.LogLevelInfo,
	"notice":  common.LogLevelNotice,
	"warning": common.LogLevelWarning,
	"error":   common.LogLevelError,
}

func main() {
	logLevel := flag.String("loglevel", "warning", "log verbosity: trace, debug, info, notice, warning, error")
	workers := flag.Int("workers", runtime.NumCPU(), "number of documents analyzed concurrently")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <input-dir> <output-dir>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	level, ok := logLevels[strings.ToLower(*logLevel)]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown log level %q\n", *logLevel)
		os.Exit(1)
	}
	common.SetLogger(common.NewConsoleLogger(level))

	if err := run(flag.Arg(0), flag.Arg(1), *workers); err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		os.Exit(1)
	}
}

func run(inputDir, outputDir string, workers int) error {
	paths, err := listPDFs(inputDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no PDF files in %s", inputDir)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}

	idx, docs, docErrs := corpus.AnalyzeCorpus(pdfsource.Decode, paths, workers)
	for _, de := range docErrs {
		common.Log.Warning("analyze: %v", &de)
	}
	if len(docs) == 0 {
		return fmt.Errorf("every document failed to decode (%d errors)", len(docErrs))
	}

	store, err := corpus.NewImageStore(filepath.Join(outputDir, "images"))
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		doc := docs[id]
		for _, img := range doc.Images {
			if _, err := store.Put(img.Bytes); err != nil {
				return err
			}
		}
		if err := writeXML(filepath.Join(outputDir, id+".xml"), func(f *os.File) error {
			return xmlexport.Document(f, doc)
		}); err != nil {
			return err
		}
	}

	if err := writeXML(filepath.Join(outputDir, "universal_blocks.xml"), func(f *os.File) error {
		return xmlexport.Universals(f, idx, 0)
	}); err != nil {
		return err
	}

	common.Log.Info("analyze: %d documents analyzed, %d skipped", len(docs), len(docErrs))
	return nil
}

func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func writeXML(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

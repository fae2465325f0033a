/*
Copyright © 2025 Ken'ichiro Oyama <k1lowxb@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/deckforge/htmldeck"
	"github.com/deckforge/htmldeck/config"
	"github.com/deckforge/htmldeck/logger/dot"
	"github.com/fsnotify/fsnotify"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
)

var (
	page  string
	watch bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [HTML_FILE] [PPTX_FILE]",
	Short: "convert an HTML slide document to a PPTX presentation",
	Long:  `convert an HTML slide document to a PPTX presentation.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := args[0]
		out := args[1]
		dotHandler, err := dot.New(slog.NewTextHandler(os.Stdout, nil))
		if err != nil {
			return err
		}
		logger := slog.New(slogmulti.Fanout(
			dotHandler,
			slog.NewJSONHandler(tb, nil),
		))
		c, err := newConverter(logger)
		if err != nil {
			return err
		}
		if err := convertFile(cmd.Context(), c, in, out); err != nil {
			return err
		}
		if !watch {
			return nil
		}
		return watchFile(cmd.Context(), c, logger, in, out)
	},
}

func newConverter(logger *slog.Logger) (*htmldeck.Converter, error) {
	cfg, err := config.Load(profile)
	if err != nil {
		return nil, err
	}
	opts := []htmldeck.Option{
		htmldeck.WithLogger(logger),
	}
	if cfg.SlideWidthPx > 0 && cfg.SlideHeightPx > 0 {
		opts = append(opts, htmldeck.WithSlideSize(cfg.SlideWidthPx, cfg.SlideHeightPx))
	}
	if cfg.SlideWidthInches > 0 {
		opts = append(opts, htmldeck.WithPhysicalWidth(cfg.SlideWidthInches))
	}
	if cfg.FallbackFont != "" {
		opts = append(opts, htmldeck.WithFallbackFont(cfg.FallbackFont))
	}
	return htmldeck.New(opts...)
}

func convertFile(ctx context.Context, c *htmldeck.Converter, in, out string) (err error) {
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	deck, err := c.Parse(ctx, f)
	if err != nil {
		return err
	}
	pages, err := pageToPages(page, len(deck.Slides))
	if err != nil {
		return err
	}
	if len(pages) != len(deck.Slides) {
		var selected htmldeck.Slides
		for _, p := range pages {
			selected = append(selected, deck.Slides[p-1])
		}
		deck.Slides = selected
	}
	o, err := os.Create(out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := o.Close(); err == nil {
			err = cerr
		}
	}()
	return deck.WritePPTX(o)
}

// watchFile re-runs the conversion whenever the input file changes.
func watchFile(ctx context.Context, c *htmldeck.Converter, logger *slog.Logger, in, out string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// Watch the directory: editors replace files on save.
	if err := watcher.Add(filepath.Dir(in)); err != nil {
		return err
	}
	logger.Info("waiting for changes")
	target, err := filepath.Abs(in)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			p, err := filepath.Abs(event.Name)
			if err != nil || p != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := convertFile(ctx, c, in, out); err != nil {
				logger.Error(fmt.Sprintf("failed to convert: %v", err))
			}
			logger.Info("waiting for changes")
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error(fmt.Sprintf("failed to watch: %v", werr))
		}
	}
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&page, "page", "p", "", "pages to convert")
	convertCmd.Flags().BoolVarP(&watch, "watch", "w", false, "watch the input file and convert on change")
}

func pageToPages(page string, total int) ([]int, error) {
	if page == "" {
		// If no page is specified, return all pages
		pages := make([]int, total)
		for i := 0; i < total; i++ {
			pages[i] = i + 1
		}
		return pages, nil
	}

	var result []int
	// Split by comma to handle comma-separated list
	parts := strings.Split(page, ",")

	for _, part := range parts {
		// Check if it's a range (contains "-")
		if strings.Contains(part, "-") {
			rangeParts := strings.Split(part, "-")

			if len(rangeParts) != 2 {
				return nil, fmt.Errorf("invalid range format: %s", part)
			}

			start, end := rangeParts[0], rangeParts[1]

			var startPage, endPage int
			var err error

			if start == "" {
				// Open start range: "-5"
				startPage = 1
			} else {
				startPage, err = strconv.Atoi(start)
				if err != nil {
					return nil, fmt.Errorf("invalid page number: %s", start)
				}
			}

			if end == "" {
				// Open end range: "3-"
				endPage = total
			} else {
				endPage, err = strconv.Atoi(end)
				if err != nil {
					return nil, fmt.Errorf("invalid page number: %s", end)
				}
			}

			// Validate page range
			if startPage < 1 || startPage > total || endPage < 1 || endPage > total || startPage > endPage {
				return nil, fmt.Errorf("invalid page range: %s", part)
			}

			for i := startPage; i <= endPage; i++ {
				if !slices.Contains(result, i) {
					result = append(result, i)
				}
			}
		} else {
			// Single page number
			p, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid page number: %s", part)
			}
			if p < 1 || p > total {
				return nil, fmt.Errorf("page number out of range: %d", p)
			}
			if !slices.Contains(result, p) {
				result = append(result, p)
			}
		}
	}

	slices.Sort(result)
	return result, nil
}

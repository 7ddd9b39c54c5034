package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/docproof/docproof/internal/config"
	"github.com/docproof/docproof/internal/domain"
	"github.com/docproof/docproof/internal/extract"
	"github.com/docproof/docproof/internal/generator"
)

// debounceDelay coalesces the bursts of events editors produce on save.
const debounceDelay = 500 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate whenever a document or its template file changes",
	Long:  `Runs one generation pass, then watches every configured document and its sibling template file, regenerating on change until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		gen := generator.New(log)
		if err := gen.Generate(cfg); err != nil {
			log.Errorf("initial generation failed: %v", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watchLoop(ctx, cfg, gen)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func watchLoop(ctx context.Context, cfg *config.Config, gen *generator.Generator) error {
	docs, err := generator.ExpandDocs(cfg.RootDir, cfg.Docs)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return domain.NewError("watch", "", 0, "failed to create watcher", err)
	}
	defer watcher.Close()

	// Watch parent directories rather than the files themselves: editors
	// that replace files on save would otherwise drop the watch.
	watched := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, doc := range docs {
		for _, p := range []string{doc, extract.TemplatePath(doc)} {
			abs, absErr := filepath.Abs(p)
			if absErr != nil {
				abs = p
			}
			watched[abs] = true
			dirs[filepath.Dir(abs)] = true
		}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return domain.NewError("watch", dir, 0, "failed to watch directory", err)
		}
	}
	log.Infof("watching %d file(s) across %d directories", len(watched), len(dirs))

	debounce := time.NewTimer(debounceDelay)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("watch stopped")
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, absErr := filepath.Abs(ev.Name)
			if absErr != nil {
				abs = ev.Name
			}
			if !watched[abs] {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			log.Debugf("change detected: %s", ev.Name)
			debounce.Reset(debounceDelay)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnf("watch error: %v", err)

		case <-debounce.C:
			if err := gen.Generate(cfg); err != nil {
				log.Errorf("generation failed: %v", err)
			}
		}
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wouterj/oopbuilder/builder"
)

var watchCmd = &cobra.Command{
	Use:   "watch <diagram.uml>",
	Short: "Re-parse a diagram whenever it changes",
	Long:  "Parse a diagram, print its model, and print it again every time the file is written.",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().Duration("debounce", 200*time.Millisecond, "Wait this long after the last change before re-parsing")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving diagram path: %w", err)
	}
	debounce, _ := cmd.Flags().GetDuration("debounce")

	b, err := newBuilder()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	render := func() {
		if err := renderFile(cmd, b, path); err != nil {
			fmt.Fprintf(os.Stderr, "[watch] %v\n", err)
		}
	}

	render()
	return watchFile(ctx, path, debounce, render)
}

func renderFile(cmd *cobra.Command, b *builder.Builder, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading diagram: %w", err)
	}
	project, err := b.RenderProject(path, src)
	if project != nil {
		printDiagnostics(os.Stderr, path, project.Diagnostics)
	}
	if err != nil {
		return err
	}
	return writeProject(cmd.OutOrStdout(), project, viper.GetString("format"))
}

// watchFile calls onChange after path is written, created or renamed into
// place. The parent directory is watched so editors that replace the file
// on save are still seen.
func watchFile(ctx context.Context, path string, debounce time.Duration, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}

	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if pending && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)
			pending = true

		case <-timer.C:
			if pending {
				pending = false
				onChange()
			}

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return watchErr
		}
	}
}

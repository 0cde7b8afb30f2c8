package i18n

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vcfranco/castpanel/internal/utils"
)

// WatchDir sets a fsnotify watcher on a locales directory for hot reload.
// When a locale file changes the directory is reloaded and the registry's
// catalog set is replaced; on a failed reload the last good set keeps
// serving. The returned stop function ends the watch.
func WatchDir(dir string, reg *Registry) (func(), error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(abs); err != nil {
		w.Close()
		return nil, err
	}

	const debounceDelay = 350 * time.Millisecond

	go func() {
		reload := func() {
			utils.Logger.Info("locales changed, reloading", "dir", abs)
			catalogs, err := LoadFS(os.DirFS(abs))
			if err != nil {
				utils.Logger.Error("failed to reload locales", "dir", abs, "err", err)
				return
			}
			if err := reg.Replace(catalogs); err != nil {
				utils.Logger.Error("failed to replace catalogs", "dir", abs, "err", err)
			}
		}

		var timer *time.Timer
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !isLocaleFile(ev.Name) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
					if timer == nil {
						timer = time.AfterFunc(debounceDelay, reload)
					} else {
						if !timer.Stop() {
							select {
							case <-timer.C:
							default:
							}
						}
						timer.Reset(debounceDelay)
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				utils.Logger.Error("fsnotify error", "err", err)
			}
		}
	}()

	return func() { w.Close() }, nil
}

func isLocaleFile(name string) bool {
	switch filepath.Ext(name) {
	case ".yaml", ".yml", ".toml":
		return true
	}
	return false
}

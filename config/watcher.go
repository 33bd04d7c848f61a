// Copyright (C) 2023 Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"code.lyraprotocol.io/lyra/logging"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
)

const (
	configFileName = "config.toml"
	namedLogger    = "cfgwatcher"
)

// Watcher is looking for updates in the configuration file.
type Watcher struct {
	log  *logging.Logger
	path string

	mu                 sync.Mutex
	cfg                Config
	cfgUpdateListeners []func(Config)
}

// NewWatcher instantiates a new watcher over the lyra config file. The
// watch goroutine stops when ctx is cancelled.
func NewWatcher(ctx context.Context, log *logging.Logger, rootPath string) (*Watcher, error) {
	log = log.Named(namedLogger)
	// configuration changes should always be visible in the logs
	log.SetLevel(logging.DebugLevel)

	w := &Watcher{
		log:  log,
		cfg:  NewDefaultConfig(),
		path: filepath.Join(rootPath, configFileName),
	}
	if err := w.load(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(w.path); err != nil {
		return nil, err
	}

	w.log.Info("config watcher started successfully",
		logging.String("config", w.path))

	go w.watch(ctx, watcher)

	return w, nil
}

// Get return the last update of the configuration.
func (w *Watcher) Get() Config {
	w.mu.Lock()
	conf := w.cfg
	w.mu.Unlock()
	return conf
}

// OnConfigUpdate register a function to be called when the
// configuration is getting updated.
func (w *Watcher) OnConfigUpdate(fns ...func(Config)) {
	w.mu.Lock()
	w.cfgUpdateListeners = append(w.cfgUpdateListeners, fns...)
	w.mu.Unlock()
}

func (w *Watcher) load() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	buf, err := os.ReadFile(w.path)
	if err != nil {
		return err
	}
	cfg := NewDefaultConfig()
	if _, err := toml.Decode(string(buf), &cfg); err != nil {
		return err
	}
	w.cfg = cfg
	return nil
}

func (w *Watcher) notify() {
	cfg := w.Get()
	w.mu.Lock()
	listeners := w.cfgUpdateListeners
	w.mu.Unlock()
	for _, f := range listeners {
		f(cfg)
	}
}

func (w *Watcher) watch(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()
	for {
		select {
		case event := <-watcher.Events:
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Rename == fsnotify.Rename {
				if event.Op&fsnotify.Rename == fsnotify.Rename {
					// editors which write through a rename create the
					// new file a moment after the event, give it time
					// to land before reading
					time.Sleep(50 * time.Millisecond)
				}
				w.log.Info("configuration updated", logging.String("event", event.Name))
				if err := w.load(); err != nil {
					if os.IsNotExist(err) {
						continue
					}
					w.log.Error("unable to load configuration", logging.Error(err))
					continue
				}
				w.notify()
			}
		case err := <-watcher.Errors:
			w.log.Error("config watcher received error event", logging.Error(err))
		case <-ctx.Done():
			return
		}
	}
}

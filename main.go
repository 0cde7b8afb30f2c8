package main

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/vcfranco/castpanel/cmd"
	"github.com/vcfranco/castpanel/internal/config"
	"github.com/vcfranco/castpanel/internal/i18n"
	"github.com/vcfranco/castpanel/internal/utils"
	"github.com/vcfranco/castpanel/locales"
)

func findConfigPath() string {
	names := []string{"config.yml", "config.yaml"}
	candidates := []string{}

	for _, n := range names {
		candidates = append(candidates, "./"+n)
	}

	home, _ := os.UserHomeDir()
	if runtime.GOOS == "windows" {
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			for _, n := range names {
				candidates = append(candidates, filepath.Join(appdata, "castpanel", n))
			}
		}
		if home != "" {
			for _, n := range names {
				candidates = append(candidates, filepath.Join(home, "castpanel", n))
			}
		}
	} else {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			for _, n := range names {
				candidates = append(candidates, filepath.Join(xdg, "castpanel", n))
			}
		}
		if home != "" {
			for _, n := range names {
				candidates = append(candidates, filepath.Join(home, ".config", "castpanel", n))
			}
		}
		for _, n := range names {
			candidates = append(candidates, filepath.Join("/etc", "castpanel", n))
		}
	}

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func main() {
	godotenv.Load()
	utils.InitLogger()

	cfg := config.Default()
	configPath := os.Getenv("CASTPANEL_CONFIG")
	if configPath == "" {
		configPath = findConfigPath()
	}
	if configPath != "" {
		c, err := config.ReadConfig(configPath)
		if err != nil {
			utils.Logger.Warn("failed to load config file", "path", configPath, "err", err)
		} else {
			cfg = c
			utils.Logger.Info("configuration loaded", "path", configPath)
		}
	}

	if v := os.Getenv("CASTPANEL_DEFAULT_LOCALE"); v != "" {
		cfg.DefaultLocale = v
	}
	if v := os.Getenv("CASTPANEL_LOCALES_DIR"); v != "" {
		cfg.LocalesDir = v
	}

	defTag, err := language.Parse(cfg.DefaultLocale)
	if err != nil {
		utils.Logger.Fatal("invalid default locale", "locale", cfg.DefaultLocale, "err", err)
	}

	catalogs, err := i18n.LoadFS(locales.Content)
	if err != nil {
		utils.Logger.Fatal("failed to load embedded locales", "err", err)
	}
	registry, err := i18n.NewRegistry(defTag, catalogs)
	if err != nil {
		utils.Logger.Fatal("failed to build locale registry", "err", err)
	}
	utils.Logger.Info("locales loaded", "count", len(catalogs), "default", defTag)

	if cfg.LocalesDir != "" {
		if external, err := i18n.LoadFS(os.DirFS(cfg.LocalesDir)); err != nil {
			utils.Logger.Warn("failed to load locales dir, using embedded", "dir", cfg.LocalesDir, "err", err)
		} else if err := registry.Replace(external); err != nil {
			utils.Logger.Warn("locales dir rejected, using embedded", "dir", cfg.LocalesDir, "err", err)
		} else {
			stop, err := i18n.WatchDir(cfg.LocalesDir, registry)
			if err != nil {
				utils.Logger.Error("failed to start locales watcher", "dir", cfg.LocalesDir, "err", err)
			} else {
				defer stop()
			}
			utils.Logger.Info("serving locales from directory", "dir", cfg.LocalesDir)
		}
	}

	cmd.StartWeb(registry, cfg)
}

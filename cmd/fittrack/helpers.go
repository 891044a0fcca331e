package fittrack

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"fittrack/internal/app"
	"fittrack/internal/config"
	"fittrack/internal/storage"
	"fittrack/internal/store"
)

// withStore loads config, opens the persistence bridge, hydrates the
// domain store, and wires the change hook so every mutation is written
// back. Save failures are logged and never fail the command; the
// in-memory state stays authoritative for the session.
func withStore(run func(*store.Store) error) error {
	cfgPath := configPath
	if cfgPath == "" {
		if p, err := app.DefaultConfigPath(); err == nil {
			cfgPath = p
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	path := dataPath
	if path == "" {
		path = cfg.DataPath
	}
	if path == "" {
		path, err = app.DefaultDataPath()
		if err != nil {
			return err
		}
	}
	if err := app.EnsureDataDir(path); err != nil {
		return err
	}
	db, err := storage.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := storage.ApplyMigrations(db); err != nil {
		return err
	}

	bridge := storage.NewBridge(db)
	st := store.New()
	st.LoadFrom(bridge)
	st.OnChange(func(key string, value any) {
		if err := bridge.SaveJSON(key, value); err != nil {
			log.Warnf("save %s: %v", key, err)
		}
	})
	return run(st)
}

func parseFloatArg(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	return v, nil
}

func parseDateOrNow(date string) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
	}
	return t, nil
}

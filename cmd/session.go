package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/classroom-tools/classpick/internal/utils"
	"github.com/classroom-tools/classpick/pkg/config"
	"github.com/classroom-tools/classpick/pkg/spinner"
	"github.com/classroom-tools/classpick/pkg/store"
)

// openSession loads the categories configuration and the persisted store
// and builds the session manager. The returned cleanup closes the store
// and releases its lock; callers must defer it on success.
func openSession(cmd *cobra.Command) (*spinner.Session, config.Config, func(), error) {
	source, _ := cmd.Flags().GetString("categories")
	if source == "" {
		source = viper.GetString("categories")
	}
	cfg, err := config.Load(source)
	if err != nil {
		utils.Log.WithError(err).Warn("could not load categories configuration, using built-in default")
		cfg = config.Default()
	}

	storeFlag, _ := cmd.Flags().GetString("store")
	if storeFlag == "" {
		storeFlag = viper.GetString("store")
	}
	storePath, err := utils.GetAbsStorePath(storeFlag)
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	lock, err := utils.NewStoreLock(storePath)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	if err := lock.Lock(); err != nil {
		return nil, config.Config{}, nil, err
	}

	db, err := store.Open(storePath)
	if err != nil {
		_ = lock.Unlock()
		return nil, config.Config{}, nil, err
	}

	cats := make([]spinner.BaseCategory, 0, len(cfg.Categories))
	for _, c := range cfg.Categories {
		cats = append(cats, spinner.BaseCategory{Name: c.Name, Items: c.Items})
	}
	sess := spinner.New(cats, db, spinner.NewSource())

	cleanup := func() {
		_ = db.Close()
		_ = lock.Unlock()
	}
	return sess, cfg, cleanup, nil
}

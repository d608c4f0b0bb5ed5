package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/themehub/internal/storage"
	"github.com/codr1/themehub/internal/themes"
)

const backupTimeout = 2 * time.Minute

// NewBackupTask returns a job function that exports every user theme through
// the sink. Individual theme failures are logged and skipped so one broken
// record cannot starve the rest of the backup.
func NewBackupTask(store *themes.Store, sink storage.Sink) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), backupTimeout)
		defer cancel()

		userThemes, err := store.UserThemes(ctx, "")
		if err != nil {
			log.Error().Err(err).Msg("Theme backup failed to list themes")
			return
		}

		exported := 0
		for _, theme := range userThemes {
			data, filename, err := themes.Export(theme)
			if err != nil {
				log.Error().Err(err).Str("uuid", theme.UUID).Msg("Theme backup failed to serialize theme")
				continue
			}
			location, err := sink.Write(filename, themes.MimeType, data)
			if err != nil {
				log.Error().Err(err).Str("uuid", theme.UUID).Msg("Theme backup failed to write theme")
				continue
			}
			log.Debug().Str("uuid", theme.UUID).Str("location", location).Msg("Theme backed up")
			exported++
		}

		log.Info().
			Int("exported", exported).
			Int("total", len(userThemes)).
			Msg("Theme backup completed")
	}
}

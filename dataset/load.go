package dataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Load fetches all four sources at once and parses them into a Dataset
// The first failure cancels the remaining fetches and is returned, no partial Dataset is returned
func Load(ctx context.Context, src Source) (*Dataset, error) {
	raw := make([][]byte, len(Kinds))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, kind := range Kinds {
		i, kind := i, kind
		group.Go(func() error {
			body, err := src.Fetch(groupCtx, kind.FileName())
			if err != nil {
				return fmt.Errorf("failed to load %s - %w", kind.FileName(), err)
			}
			raw[i] = body
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		log.Error().Err(err).Msg("Loading data failed")
		return nil, err
	}

	for i, kind := range Kinds {
		if kind == KindOldUpdates {
			continue
		}
		if strings.TrimSpace(string(raw[i])) == "" {
			return nil, fmt.Errorf("%w: %s", ErrEmptyData, kind.FileName())
		}
	}
	oldUpdates, err := ParseOldUpdates(raw[3])
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s - %w", KindOldUpdates.FileName(), err)
	}
	ds := &Dataset{
		Titles:     ParseTitles(string(raw[0])),
		DLCs:       ParseDLCs(string(raw[1])),
		Updates:    ParseUpdates(string(raw[2])),
		OldUpdates: oldUpdates,
	}
	counts := ds.Counts()
	log.Info().
		Int("titles", counts.Titles).
		Int("dlcs", counts.DLCs).
		Int("updates", counts.Updates).
		Int("oldUpdates", counts.OldUpdates).
		Msg("Loaded missing content")
	return ds, nil
}

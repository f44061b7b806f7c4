package dataset

import (
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/internal/core/models"
	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/internal/core/observability/log"
)

// Stats summarizes what Apply did.
type Stats struct {
	Entities  int
	Accepted  int
	Rejected  int
	Generated int
}

// Apply appends one entity per record, in document order. Records without an
// id get a random UUID. Non-numeric values are skipped and counted.
func Apply(c *models.Collection, logger log.Log, docs ...*Document) Stats {
	if logger == nil {
		logger = log.NewNop()
	}

	var stats Stats
	for _, doc := range docs {
		for _, rec := range doc.Entities {
			id := rec.ID
			if id == "" {
				id = uuid.NewString()
				stats.Generated++
			}

			e := c.AddEntity(id)
			stats.Entities++

			for _, name := range slices.Sorted(maps.Keys(rec.Fields)) {
				if e.Add(name, rec.Fields[name]) {
					stats.Accepted++
					continue
				}
				stats.Rejected++
				logger.Warn("skipping non-numeric field value",
					log.String("source", doc.Source),
					log.String("entity_id", id),
					log.String("field", name),
					log.Any("value", rec.Fields[name]),
				)
			}
		}
	}

	logger.Info("dataset applied",
		log.Int("entities", stats.Entities),
		log.Int("accepted", stats.Accepted),
		log.Int("rejected", stats.Rejected),
		log.Int("generated_ids", stats.Generated),
	)
	return stats
}

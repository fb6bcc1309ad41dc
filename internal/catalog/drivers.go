package catalog

import (
	"sort"
	"strings"
)

// Driver is a driver listing shown to owners
type Driver struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Rating         float64 `json:"rating"`
	TrustScore     int     `json:"trust_score"`
	Experience     int     `json:"experience"`
	Trips          int     `json:"trips"`
	Location       string  `json:"location"`
	DistanceKM     float64 `json:"distance_km"`
	Available      bool    `json:"available"`
	CompletionRate float64 `json:"completion_rate"`
}

// SearchDrivers matches query against name and location, case-insensitively.
// An empty query matches everyone.
func (c *Catalog) SearchDrivers(query string, availableOnly bool) []Driver {
	q := strings.ToLower(strings.TrimSpace(query))

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Driver, 0, len(c.drivers))
	for _, d := range c.drivers {
		if availableOnly && !d.Available {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(d.Name), q) &&
			!strings.Contains(strings.ToLower(d.Location), q) {
			continue
		}
		out = append(out, *d)
	}
	return out
}

// RecommendedDrivers returns up to limit drivers, available ones first,
// then by trust score.
func (c *Catalog) RecommendedDrivers(limit int) []Driver {
	all := c.SearchDrivers("", false)
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Available != all[j].Available {
			return all[i].Available
		}
		return all[i].TrustScore > all[j].TrustScore
	})
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all
}

// Package aggregate implements the client read path over the report list:
// locality filtering, bucket partitioning, free-text search and display
// location resolution. Everything here is a pure function of its inputs.
package aggregate

import (
	"strconv"
	"strings"

	"github.com/shivtchandra/CivicWatch/internal/client/models"
)

// Bucket is one of the four display categories a report is sorted into.
type Bucket string

const (
	BucketMissing   Bucket = "missing"
	BucketLostFound Bucket = "lost-found"
	BucketSafety    Bucket = "safety"
	BucketCivic     Bucket = "civic"
)

// Buckets lists all buckets in display order.
var Buckets = []Bucket{BucketMissing, BucketLostFound, BucketSafety, BucketCivic}

// BucketFor maps a category string to its display bucket. The mapping is
// total: any category it does not recognize lands in the safety bucket.
func BucketFor(category string) Bucket {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "missing_person", "missing":
		return BucketMissing
	case "lost_found", "lostfound", "lost", "found":
		return BucketLostFound
	case "infrastructure", "public_services", "environment", "transportation", "civic":
		return BucketCivic
	default:
		return BucketSafety
	}
}

// Partition splits reports into buckets, preserving input order within each.
func Partition(reports []*models.Report) map[Bucket][]*models.Report {
	out := make(map[Bucket][]*models.Report, len(Buckets))
	for _, r := range reports {
		b := BucketFor(r.Category)
		out[b] = append(out[b], r)
	}
	return out
}

// locality resolves the report's comparable locality: its own city, falling
// back to the owner's city, then to the free-text location.
func locality(r *models.Report) string {
	if c := strings.TrimSpace(r.City); c != "" {
		return c
	}
	if r.Owner != nil {
		if c := strings.TrimSpace(r.Owner.City); c != "" {
			return c
		}
	}
	return strings.TrimSpace(r.Location)
}

// FilterByCity retains reports whose locality equals the profile city after
// trimming, comparing case-sensitively. An empty city keeps everything.
func FilterByCity(reports []*models.Report, city string) []*models.Report {
	city = strings.TrimSpace(city)
	if city == "" {
		return reports
	}

	var out []*models.Report
	for _, r := range reports {
		if locality(r) == city {
			out = append(out, r)
		}
	}
	return out
}

// Search filters reports by a free-text query. Exact case-insensitive
// location matches take precedence and suppress everything else; only when
// no location matches exist does the search fall back to a case-insensitive
// substring scan over title, description and location. A blank query returns
// the input unfiltered.
func Search(reports []*models.Report, query string) []*models.Report {
	query = strings.TrimSpace(query)
	if query == "" {
		return reports
	}

	var exact []*models.Report
	for _, r := range reports {
		if strings.EqualFold(strings.TrimSpace(r.Location), query) {
			exact = append(exact, r)
		}
	}
	if len(exact) > 0 {
		return exact
	}

	q := strings.ToLower(query)
	var out []*models.Report
	for _, r := range reports {
		if strings.Contains(strings.ToLower(r.Title), q) ||
			strings.Contains(strings.ToLower(r.Description), q) ||
			strings.Contains(strings.ToLower(r.Location), q) {
			out = append(out, r)
		}
	}
	return out
}

// View composes the full read path for one bucket: locality filter, bucket
// selection, then search within the bucket.
func View(reports []*models.Report, profileCity, query string, bucket Bucket) []*models.Report {
	local := FilterByCity(reports, profileCity)

	var inBucket []*models.Report
	for _, r := range local {
		if BucketFor(r.Category) == bucket {
			inBucket = append(inBucket, r)
		}
	}

	return Search(inBucket, query)
}

// DisplayLocation resolves what to show as a report's location: the explicit
// location string, else the owner's city, else a formatted coordinate pair,
// else the empty string.
func DisplayLocation(r *models.Report) string {
	if loc := strings.TrimSpace(r.Location); loc != "" {
		return loc
	}
	if r.Owner != nil {
		if c := strings.TrimSpace(r.Owner.City); c != "" {
			return c
		}
	}
	if r.Lat != nil && r.Lng != nil {
		return strconv.FormatFloat(*r.Lat, 'f', -1, 64) + ", " + strconv.FormatFloat(*r.Lng, 'f', -1, 64)
	}
	return ""
}

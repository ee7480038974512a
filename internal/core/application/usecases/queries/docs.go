// Package queries holds the read side of the market: catalog browsing, order
// details and user profiles. Handlers run raw SQL through GORM and never load
// aggregates. Listings are paginated by DefaultPageSize, pages start at 1.
package queries

package eater

import (
	"encoding/json"
	"strings"

	"eater-scraper/models"
	"eater-scraper/utils"

	"github.com/PuerkitoBio/goquery"
)

// Template coupling lives here. Eater renders its map cards with these
// class names; when the page template changes, this is the only block
// that needs to move.
const (
	jsonLDSelector    = `script[type="application/ld+json"]`
	mapCardClass      = "duet--article--map-card"
	slugAttr          = "data-slug"
	addressClass      = "hkfm3hg"
	descriptionClass  = "duet--article--dangerously-set-cms-markup"
	targetListingType = "Restaurant"
)

// jsonLDPayload is the slice of the JSON-LD tree we care about.
type jsonLDPayload struct {
	ItemListElement []struct {
		Item models.RawListing `json:"item"`
	} `json:"itemListElement"`
}

// parseJSONLD pulls the first JSON-LD script block out of the document.
// A page without one, or with an empty or malformed block, is the benign
// "no data" case: log it and return nil, never an error.
func parseJSONLD(doc *goquery.Document) *jsonLDPayload {
	script := doc.Find(jsonLDSelector).First()
	if script.Length() == 0 {
		utils.Warn("No JSON-LD data found in the page")
		return nil
	}

	text := strings.TrimSpace(script.Text())
	if text == "" {
		utils.Warn("JSON-LD script tag is empty")
		return nil
	}

	var payload jsonLDPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		utils.Warn("Error parsing JSON-LD data: %v", err)
		return nil
	}
	return &payload
}

// restaurantItems filters the payload down to Restaurant items,
// preserving input order. Other item types are skipped silently.
func restaurantItems(payload *jsonLDPayload) []models.RawListing {
	var items []models.RawListing
	if payload == nil {
		return items
	}
	for _, el := range payload.ItemListElement {
		if el.Item.Type == targetListingType {
			items = append(items, el.Item)
		}
	}
	return items
}

// listingSlug derives the map-card key from a listing URL: everything
// after the last '#', or "" when there is no fragment.
func listingSlug(listingURL string) string {
	idx := strings.LastIndex(listingURL, "#")
	if idx < 0 {
		return ""
	}
	return listingURL[idx+1:]
}

// mapCardInfo finds the map card matching the listing's slug and pulls
// out the fields the JSON-LD payload does not carry: the address line
// and the free-text description. Either may legitimately be missing.
func mapCardInfo(doc *goquery.Document, listing models.RawListing) (address, description string) {
	slug := listingSlug(listing.URL)

	var card *goquery.Selection
	doc.Find("div." + mapCardClass).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if v, ok := s.Attr(slugAttr); ok && v == slug {
			card = s
			return false
		}
		return true
	})
	if card == nil {
		return "", ""
	}

	address = strings.TrimSpace(card.Find("span." + addressClass).First().Text())

	var parts []string
	card.Find("p." + descriptionClass).Each(func(_ int, p *goquery.Selection) {
		parts = append(parts, strings.TrimSpace(p.Text()))
	})
	description = strings.Join(parts, " ")

	return address, description
}

// buildRecord merges a listing with its map-card fields into the
// normalized output shape. The provenance token always comes from the
// page URL being scraped, not the listing's own URL.
func buildRecord(listing models.RawListing, pageURL, address, description string) models.Record {
	var desc *string
	if description != "" {
		desc = &description
	}
	return models.Record{
		Name:        listing.Name,
		Description: desc,
		Address:     address,
		Source:      SourceToken(pageURL),
		SourceURL:   listing.URL,
	}
}

// ExtractRestaurants runs the full page pipeline: parse once, extract
// the JSON-LD listings, enrich each from its map card, and keep only
// listings with an address. A listing without an address cannot satisfy
// the one-row-per-address invariant, so it is dropped with a warning
// rather than failing the page.
func ExtractRestaurants(htmlBody, pageURL string) ([]models.Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlBody))
	if err != nil {
		return nil, err
	}

	var records []models.Record
	payload := parseJSONLD(doc)
	if payload == nil {
		return records, nil
	}
	utils.Info("Parsed JSON-LD data with %d items", len(payload.ItemListElement))

	for _, listing := range restaurantItems(payload) {
		address, description := mapCardInfo(doc, listing)
		if address == "" {
			utils.Warn("Skipping restaurant %s - no address found", listing.Name)
			continue
		}
		records = append(records, buildRecord(listing, pageURL, address, description))
	}

	utils.Info("Extracted %d restaurants from %s", len(records), pageURL)
	return records, nil
}

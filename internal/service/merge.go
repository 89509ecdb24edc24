package service

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-envelope/models"
)

// replaceEntry returns imported under the identity of existing.
func replaceEntry(existing, imported models.VaultEntry, now time.Time) models.VaultEntry {
	out := imported
	out.ID = existing.ID
	out.AccountID = existing.AccountID
	out.CreatedAt = existing.CreatedAt
	out.UpdatedAt = now
	return out
}

// mergeEntries folds imported into existing. Existing metadata wins and
// only blank fields are taken from imported. Tags are united, custom fields
// are united by name with imported values winning, and the password is the
// imported one. CreatedAt and UpdatedAt stay those of existing.
func mergeEntries(existing, imported models.VaultEntry) models.VaultEntry {
	out := existing
	out.Title = firstNonBlank(existing.Title, imported.Title)
	out.Username = firstNonBlank(existing.Username, imported.Username)
	out.Website = firstNonBlank(existing.Website, imported.Website)
	out.Category = firstNonBlank(existing.Category, imported.Category)
	out.Notes = firstNonBlank(existing.Notes, imported.Notes)
	out.IsFavorite = existing.IsFavorite || imported.IsFavorite
	out.Tags = unionTags(existing.Tags, imported.Tags)
	out.CustomFields = mergeCustomFields(existing.CustomFields, imported.CustomFields)
	out.Password = imported.Password
	return out
}

func firstNonBlank(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}

func unionTags(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, list := range [][]string{a, b} {
		for _, tag := range list {
			k := strings.ToLower(strings.TrimSpace(tag))
			if k == "" {
				continue
			}
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}

func mergeCustomFields(existing, imported []models.CustomField) []models.CustomField {
	out := make([]models.CustomField, 0, len(existing)+len(imported))
	index := make(map[string]int, len(existing)+len(imported))

	for _, f := range existing {
		index[strings.TrimSpace(f.Name)] = len(out)
		out = append(out, f)
	}
	for _, f := range imported {
		name := strings.TrimSpace(f.Name)
		if i, ok := index[name]; ok {
			out[i] = f
			continue
		}
		index[name] = len(out)
		out = append(out, f)
	}
	return out
}

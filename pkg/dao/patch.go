package dao

import (
	"fmt"
	"strings"

	"github.com/memories-timeline/memories-backend/pkg/api"
	"github.com/memories-timeline/memories-backend/pkg/config"
	ce "github.com/memories-timeline/memories-backend/pkg/errors"
	"github.com/memories-timeline/memories-backend/pkg/models"
	"github.com/memories-timeline/memories-backend/pkg/utils"
)

// UpdatePlan is the set of writes a partial update resolves to
type UpdatePlan struct {
	Fields        map[string]any // Column to new value, nil clears the column
	ReplaceAssets bool           // Delete every asset of the memory and insert Assets
	Assets        []api.AssetRequest
	Touch         bool // Bump updated_at and edited_by
}

// Empty is true when the update has nothing to write
func (p UpdatePlan) Empty() bool {
	return !p.Touch
}

// ReconcileUpdate validates a partial update against the memory's current type and
// stages the writes it implies. Every rule is checked against the effective type, the
// requested type when one is sent and the existing type otherwise.
func ReconcileUpdate(existingType string, req api.MemoryUpdateRequest) (UpdatePlan, error) {
	plan := UpdatePlan{Fields: map[string]any{}}

	effectiveType := existingType
	if req.Type.Set {
		if req.Type.Null {
			return UpdatePlan{}, ce.NewValidationError("type cannot be cleared")
		}
		if !config.ValidMemoryType(req.Type.Value) {
			return UpdatePlan{}, ce.NewValidationError(fmt.Sprintf("Invalid memory type %s", req.Type.Value))
		}
		effectiveType = req.Type.Value
	}
	if effectiveType != existingType &&
		(config.AssetBearingType(existingType) || config.AssetBearingType(effectiveType)) {
		return UpdatePlan{}, ce.NewValidationError("Changing memory type to/from asset types is not supported")
	}
	if req.Type.Set {
		plan.Fields["type"] = effectiveType
	}

	if req.Content.Set {
		content := optionalText(req.Content)
		if err := models.ValidateContent(effectiveType, content); err != nil {
			return UpdatePlan{}, DBToApiError(err)
		}
		if config.AssetBearingType(effectiveType) {
			plan.Fields["content"] = nil
		} else {
			plan.Fields["content"] = nullable(content)
		}
	}

	if req.Caption.Set {
		plan.Fields["caption"] = nullable(optionalText(req.Caption))
	}

	if req.Location.Set {
		plan.Fields["location"] = nullable(optionalText(req.Location))
	}

	if req.MemoryDate.Set {
		if !req.MemoryDate.Present() || strings.TrimSpace(req.MemoryDate.Value) == "" {
			return UpdatePlan{}, ce.NewValidationError("memory_date cannot be cleared")
		}
		memoryDate, err := ParseTimestamp(req.MemoryDate.Value)
		if err != nil {
			return UpdatePlan{}, ce.NewValidationError("Invalid memory_date")
		}
		plan.Fields["memory_date"] = memoryDate
	}

	if req.Tags.Set {
		plan.Fields["tags"] = nullable(normalizedTagsOrNil(optionalText(req.Tags)))
	}

	if req.Assets.Set {
		// null is treated as an empty list
		assets := req.Assets.Value
		if assets == nil {
			assets = []api.AssetRequest{}
		}
		if err := validateAssets(effectiveType, assets); err != nil {
			return UpdatePlan{}, err
		}
		plan.ReplaceAssets = true
		plan.Assets = assets
	}

	plan.Touch = len(plan.Fields) > 0 || plan.ReplaceAssets
	return plan, nil
}

func validateAssets(memoryType string, assets []api.AssetRequest) error {
	if err := models.ValidateAssetCount(memoryType, len(assets)); err != nil {
		return DBToApiError(err)
	}
	for _, a := range assets {
		if err := models.ValidateAsset(a.AssetKey, a.AssetType); err != nil {
			return DBToApiError(err)
		}
	}
	return nil
}

// optionalText maps an absent, null or empty value to nil
func optionalText(o api.Optional[string]) *string {
	if !o.Present() {
		return nil
	}
	return utils.NilIfEmpty(o.Value)
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/memories-timeline/memories-backend/pkg/api"
	"github.com/memories-timeline/memories-backend/pkg/config"
	ce "github.com/memories-timeline/memories-backend/pkg/errors"
	"github.com/memories-timeline/memories-backend/pkg/models"
	"github.com/memories-timeline/memories-backend/pkg/utils"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type memoryDaoImpl struct {
	db *gorm.DB
}

func GetMemoryDao(db *gorm.DB) MemoryDao {
	return memoryDaoImpl{db: db}
}

func (m memoryDaoImpl) List(ctx context.Context, filters api.MemoryFilters, limit int) (api.MemoryCollectionResponse, error) {
	limit = normalizeLimit(limit)

	predicate, err := BuildMemoryFilter(filters)
	if err != nil {
		return api.MemoryCollectionResponse{}, err
	}

	memories := make([]models.Memory, 0)
	query := m.db.WithContext(ctx).Table(models.TableNameMemory + " AS m").Select("m.*")
	if predicate.Clause != "" {
		query = query.Where(predicate.Clause, predicate.Args...)
	}
	err = query.
		Order("m.memory_date DESC").
		Order("m.id DESC").
		Limit(limit + 1).
		Find(&memories).Error
	if err != nil {
		return api.MemoryCollectionResponse{}, DBToApiError(err)
	}

	// One extra row tells whether another page exists. The cursor is the last row
	// returned, since rows strictly before it make up the next page.
	var nextCursor *api.Cursor
	if len(memories) > limit {
		memories = memories[:limit]
		last := memories[limit-1]
		nextCursor = &api.Cursor{Date: last.MemoryDate.UTC(), ID: last.UUID}
	}

	if err = m.attachAssets(m.db.WithContext(ctx), memories); err != nil {
		return api.MemoryCollectionResponse{}, DBToApiError(err)
	}

	resp := api.MemoryCollectionResponse{
		Memories:   make([]api.MemoryResponse, len(memories)),
		NextCursor: nextCursor,
	}
	for i := range memories {
		memoriesModelToApi(memories[i], &resp.Memories[i])
	}
	return resp, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return config.DefaultListLimit
	}
	if limit > config.MaxListLimit {
		return config.MaxListLimit
	}
	return limit
}

// attachAssets loads the assets of every memory in one query, ordered by sort_order
func (m memoryDaoImpl) attachAssets(tx *gorm.DB, memories []models.Memory) error {
	if len(memories) == 0 {
		return nil
	}
	ids := make([]string, len(memories))
	for i := range memories {
		ids[i] = memories[i].UUID
		memories[i].Assets = make([]models.MemoryAsset, 0)
	}

	assets := make([]models.MemoryAsset, 0)
	err := tx.
		Where("memory_id IN ?", ids).
		Order("memory_id").
		Order("sort_order ASC").
		Find(&assets).Error
	if err != nil {
		return err
	}

	byMemory := make(map[string][]models.MemoryAsset, len(memories))
	for _, a := range assets {
		byMemory[a.MemoryID] = append(byMemory[a.MemoryID], a)
	}
	for i := range memories {
		if found, ok := byMemory[memories[i].UUID]; ok {
			memories[i].Assets = found
		}
	}
	return nil
}

func (m memoryDaoImpl) Fetch(ctx context.Context, uuid string) (api.MemoryResponse, error) {
	var resp api.MemoryResponse
	memory, err := m.fetch(m.db.WithContext(ctx), uuid)
	if err != nil {
		return api.MemoryResponse{}, err
	}
	memoriesModelToApi(memory, &resp)
	return resp, nil
}

func (m memoryDaoImpl) fetch(tx *gorm.DB, memoryUUID string) (models.Memory, error) {
	var memory models.Memory
	if _, err := uuid.Parse(memoryUUID); err != nil {
		return models.Memory{}, memoryNotFound(memoryUUID)
	}

	err := tx.Where("id = ?", memoryUUID).First(&memory).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Memory{}, memoryNotFound(memoryUUID)
		}
		return models.Memory{}, DBToApiError(err)
	}

	memories := []models.Memory{memory}
	if err = m.attachAssets(tx, memories); err != nil {
		return models.Memory{}, DBToApiError(err)
	}
	return memories[0], nil
}

func memoryNotFound(memoryUUID string) error {
	return ce.NewNotFoundError("Could not find memory with id " + memoryUUID)
}

func (m memoryDaoImpl) Create(ctx context.Context, userID string, req api.MemoryCreateRequest) (api.MemoryResponse, error) {
	memory, assets, err := memoriesApiToModel(userID, req)
	if err != nil {
		return api.MemoryResponse{}, err
	}

	err = m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return insertMemory(tx, &memory, assets)
	})
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("type", memory.Type).Msg("Failed to create memory")
		return api.MemoryResponse{}, DBToApiError(err)
	}

	return m.Fetch(ctx, memory.UUID)
}

// insertMemory writes the memory row and then its assets. Callers run it inside a transaction.
func insertMemory(tx *gorm.DB, memory *models.Memory, assets []models.MemoryAsset) error {
	if err := tx.Omit(clause.Associations).Create(memory).Error; err != nil {
		return err
	}
	if len(assets) == 0 {
		return nil
	}
	for i := range assets {
		assets[i].MemoryID = memory.UUID
	}
	return tx.Create(&assets).Error
}

// memoriesApiToModel validates a create request and builds the rows to insert
func memoriesApiToModel(userID string, req api.MemoryCreateRequest) (models.Memory, []models.MemoryAsset, error) {
	if userID == "" {
		return models.Memory{}, nil, ce.NewValidationError("User is required")
	}
	if !config.ValidMemoryType(req.Type) {
		return models.Memory{}, nil, ce.NewValidationError("Invalid memory type " + req.Type)
	}
	if err := models.ValidateContent(req.Type, req.Content); err != nil {
		return models.Memory{}, nil, DBToApiError(err)
	}
	if err := validateAssets(req.Type, req.Assets); err != nil {
		return models.Memory{}, nil, err
	}
	if strings.TrimSpace(req.MemoryDate) == "" {
		return models.Memory{}, nil, ce.NewValidationError("memory_date is required")
	}
	memoryDate, err := ParseTimestamp(req.MemoryDate)
	if err != nil {
		return models.Memory{}, nil, ce.NewValidationError("Invalid memory_date")
	}

	memory := models.Memory{
		UserID:     userID,
		Type:       req.Type,
		MemoryDate: memoryDate,
		Tags:       normalizedTagsOrNil(req.Tags),
	}
	if req.Caption != nil {
		memory.Caption = utils.NilIfEmpty(*req.Caption)
	}
	if req.Location != nil {
		memory.Location = utils.NilIfEmpty(*req.Location)
	}
	if !config.AssetBearingType(req.Type) {
		memory.Content = req.Content
	}

	return memory, assetsApiToModel(req.Assets), nil
}

func assetsApiToModel(assets []api.AssetRequest) []models.MemoryAsset {
	rows := make([]models.MemoryAsset, len(assets))
	for i, a := range assets {
		rows[i] = models.MemoryAsset{
			AssetKey:     a.AssetKey,
			ThumbnailKey: a.ThumbnailKey,
			AssetType:    a.AssetType,
			SortOrder:    i,
		}
		if a.SortOrder != nil {
			rows[i].SortOrder = *a.SortOrder
		}
	}
	return rows
}

func (m memoryDaoImpl) Update(ctx context.Context, uuid string, editor string, req api.MemoryUpdateRequest) (api.MemoryResponse, error) {
	var updated models.Memory

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		updated, err = m.update(tx, uuid, editor, req)
		return err
	})
	if err != nil {
		return api.MemoryResponse{}, DBToApiError(err)
	}

	var resp api.MemoryResponse
	memoriesModelToApi(updated, &resp)
	return resp, nil
}

func (m memoryDaoImpl) update(tx *gorm.DB, memoryUUID string, editor string, req api.MemoryUpdateRequest) (models.Memory, error) {
	existing, err := m.lockMemory(tx, memoryUUID)
	if err != nil {
		return models.Memory{}, err
	}

	plan, err := ReconcileUpdate(existing.Type, req)
	if err != nil {
		return models.Memory{}, err
	}
	if plan.Empty() {
		return m.fetch(tx, memoryUUID)
	}

	fields := plan.Fields
	fields["updated_at"] = time.Now().UTC()
	fields["edited_by"] = editor
	result := tx.Model(&models.Memory{}).Where("id = ?", memoryUUID).Updates(fields)
	if result.Error != nil {
		zerolog.Ctx(tx.Statement.Context).Error().Err(result.Error).Str("uuid", memoryUUID).Msg("Failed to update memory")
		return models.Memory{}, result.Error
	}
	if result.RowsAffected != 1 {
		return models.Memory{}, memoryNotFound(memoryUUID)
	}

	if plan.ReplaceAssets {
		err = tx.Where("memory_id = ?", memoryUUID).Delete(&models.MemoryAsset{}).Error
		if err != nil {
			zerolog.Ctx(tx.Statement.Context).Error().Err(err).Str("uuid", memoryUUID).Msg("Failed to delete memory assets")
			return models.Memory{}, err
		}
		assets := assetsApiToModel(plan.Assets)
		for i := range assets {
			assets[i].MemoryID = memoryUUID
		}
		if len(assets) > 0 {
			if err = tx.Create(&assets).Error; err != nil {
				zerolog.Ctx(tx.Statement.Context).Error().Err(err).Str("uuid", memoryUUID).Msg("Failed to insert memory assets")
				return models.Memory{}, err
			}
		}
	}

	return m.fetch(tx, memoryUUID)
}

// lockMemory reads the memory type and holds a row lock on it until the transaction ends,
// so concurrent asset replacements of the same memory do not interleave.
func (m memoryDaoImpl) lockMemory(tx *gorm.DB, memoryUUID string) (models.Memory, error) {
	var existing models.Memory
	if _, err := uuid.Parse(memoryUUID); err != nil {
		return models.Memory{}, memoryNotFound(memoryUUID)
	}
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "type").
		Where("id = ?", memoryUUID).
		First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Memory{}, memoryNotFound(memoryUUID)
		}
		return models.Memory{}, err
	}
	return existing, nil
}

func (m memoryDaoImpl) ListMedia(ctx context.Context) (api.MediaCollectionResponse, error) {
	media := make([]api.MediaItem, 0)
	err := m.db.WithContext(ctx).
		Table(models.TableNameMemoryAsset+" AS a").
		Select("DISTINCT a.asset_key, a.thumbnail_key, a.asset_type, m.memory_date, m.caption AS memory_caption").
		Joins("JOIN "+models.TableNameMemory+" AS m ON m.id = a.memory_id").
		Where("a.asset_type IN ?", []string{config.AssetTypeImage, config.AssetTypeVideo}).
		Order("m.memory_date DESC").
		Order("a.asset_key ASC").
		Scan(&media).Error
	if err != nil {
		return api.MediaCollectionResponse{}, DBToApiError(err)
	}
	for i := range media {
		media[i].MemoryDate = media[i].MemoryDate.UTC()
	}
	return api.MediaCollectionResponse{Media: media}, nil
}

func memoriesModelToApi(model models.Memory, resp *api.MemoryResponse) {
	resp.UUID = model.UUID
	resp.UserID = model.UserID
	resp.Type = model.Type
	resp.Content = model.Content
	resp.Caption = model.Caption
	resp.Location = model.Location
	resp.MemoryDate = model.MemoryDate.UTC()
	resp.CreatedAt = model.CreatedAt.UTC()
	resp.UpdatedAt = model.UpdatedAt.UTC()
	resp.EditedBy = model.EditedBy
	resp.Tags = model.Tags
	resp.Assets = make([]api.AssetResponse, len(model.Assets))
	for i, a := range model.Assets {
		resp.Assets[i] = api.AssetResponse{
			UUID:         a.UUID,
			MemoryID:     a.MemoryID,
			AssetKey:     a.AssetKey,
			ThumbnailKey: a.ThumbnailKey,
			AssetType:    a.AssetType,
			SortOrder:    a.SortOrder,
		}
	}
}

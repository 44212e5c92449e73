package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/server/respond"
)

const maxDocumentBytes = 1 << 20 // 1MB

// Handler wires HTTP handlers to the content service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterPublicRoutes attaches the read-only route the portfolio site uses.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/content", h.get)
}

// RegisterAdminRoutes attaches the mutating routes the admin surface uses.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PUT("/content", h.save)
	rg.POST("/content", h.save)
	rg.PUT("/content/sections/:section", h.saveSection)
	rg.PATCH("/content/personal-info", h.patchPersonalInfo)
	rg.POST("/content/sections/:section/entries", h.addEntry)
	rg.PATCH("/content/sections/:section/entries/:index", h.patchEntry)
	rg.DELETE("/content/sections/:section/entries/:index", h.removeEntry)
}

func (h *Handler) get(c *gin.Context) {
	doc, revision, err := h.Svc.Load(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	setRevisionHeader(c, revision)
	respond.OK(c, doc)
}

func (h *Handler) save(c *gin.Context) {
	expected, ok := expectedRevision(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxDocumentBytes)
	var doc Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	revision, err := h.Svc.Save(c.Request.Context(), doc, expected)
	if err != nil {
		h.respondError(c, err)
		return
	}
	setRevisionHeader(c, revision)
	respond.OK(c, saveResponse{Success: true})
}

func (h *Handler) saveSection(c *gin.Context) {
	section, ok := sectionParam(c)
	if !ok {
		return
	}
	expected, ok := expectedRevision(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxDocumentBytes)
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read body", nil)
		return
	}

	edited, err := decodeSectionValue(section, raw)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	doc, revision, err := h.Svc.SaveSection(c.Request.Context(), section, edited, expected)
	if err != nil {
		h.respondError(c, err)
		return
	}
	setRevisionHeader(c, revision)
	respond.OK(c, saveResponse{Success: true, Document: &doc})
}

func (h *Handler) patchPersonalInfo(c *gin.Context) {
	var req fieldChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	value, err := decodeValue(req.Value)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid value", nil)
		return
	}

	doc, revision, err := h.Svc.PatchField(c.Request.Context(), SectionPersonalInfo, req.FieldPath, value, 0)
	if err != nil {
		h.respondError(c, err)
		return
	}
	setRevisionHeader(c, revision)
	respond.OK(c, saveResponse{Success: true, Document: &doc})
}

func (h *Handler) addEntry(c *gin.Context) {
	section, ok := collectionParam(c)
	if !ok {
		return
	}

	doc, revision, err := h.Svc.AddSectionEntry(c.Request.Context(), section)
	if err != nil {
		h.respondError(c, err)
		return
	}
	setRevisionHeader(c, revision)
	respond.JSON(c, http.StatusCreated, saveResponse{Success: true, Document: &doc})
}

func (h *Handler) patchEntry(c *gin.Context) {
	section, ok := collectionParam(c)
	if !ok {
		return
	}
	index, ok := indexParam(c)
	if !ok {
		return
	}

	var req entryPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	var (
		doc      Document
		revision int64
		err      error
	)
	switch {
	case req.FieldPath != "":
		var value any
		value, err = decodeValue(req.Value)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid value", nil)
			return
		}
		doc, revision, err = h.Svc.PatchField(c.Request.Context(), section, req.FieldPath, value, index)
	case req.Entry != nil:
		doc, revision, err = h.Svc.UpdateSectionEntry(c.Request.Context(), section, index, req.Entry)
	default:
		respond.Error(c, http.StatusBadRequest, "validation_error", "fieldPath or entry is required", nil)
		return
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	setRevisionHeader(c, revision)
	respond.OK(c, saveResponse{Success: true, Document: &doc})
}

func (h *Handler) removeEntry(c *gin.Context) {
	section, ok := collectionParam(c)
	if !ok {
		return
	}
	index, ok := indexParam(c)
	if !ok {
		return
	}

	doc, revision, err := h.Svc.RemoveSectionEntry(c.Request.Context(), section, index)
	if err != nil {
		h.respondError(c, err)
		return
	}
	setRevisionHeader(c, revision)
	respond.OK(c, saveResponse{Success: true, Document: &doc})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidDocument):
		respond.Error(c, http.StatusBadRequest, "invalid_document", err.Error(), nil)
	case errors.Is(err, ErrIndexOutOfRange):
		respond.Error(c, http.StatusBadRequest, "index_out_of_range", err.Error(), nil)
	case errors.Is(err, ErrPathTooDeep):
		respond.Error(c, http.StatusBadRequest, "path_too_deep", err.Error(), nil)
	case errors.Is(err, ErrUnknownSection):
		respond.Error(c, http.StatusBadRequest, "unknown_section", err.Error(), nil)
	case errors.Is(err, ErrUnknownField):
		respond.Error(c, http.StatusBadRequest, "unknown_field", err.Error(), nil)
	case errors.Is(err, ErrInvalidValue):
		respond.Error(c, http.StatusBadRequest, "invalid_value", err.Error(), nil)
	case errors.Is(err, ErrConflict):
		respond.Error(c, http.StatusConflict, "conflict", "document changed since it was loaded", nil)
	case errors.Is(err, ErrStoreUnavailable):
		respond.Error(c, http.StatusInternalServerError, "store_unavailable", "content store unavailable", nil)
	case errors.Is(err, ErrPersistFailure):
		respond.Error(c, http.StatusInternalServerError, "persist_failure", "failed to persist document", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "unexpected error", nil)
	}
}

func sectionParam(c *gin.Context) (Section, bool) {
	section := Section(strings.TrimSpace(c.Param("section")))
	if !section.IsKnown() {
		respond.Error(c, http.StatusBadRequest, "unknown_section", fmt.Sprintf("unknown section %q", section), nil)
		return "", false
	}
	return section, true
}

func collectionParam(c *gin.Context) (Section, bool) {
	section, ok := sectionParam(c)
	if !ok {
		return "", false
	}
	if !section.IsCollection() {
		respond.Error(c, http.StatusBadRequest, "unknown_section", fmt.Sprintf("%q is not an entry collection", section), nil)
		return "", false
	}
	return section, true
}

func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "index must be an integer", nil)
		return 0, false
	}
	return index, true
}

// expectedRevision reads the optional If-Match header. Absent means
// last-write-wins; a malformed value is rejected.
func expectedRevision(c *gin.Context) (int64, bool) {
	header := strings.TrimSpace(c.GetHeader("If-Match"))
	if header == "" {
		return AnyRevision, true
	}
	revision, err := strconv.ParseInt(strings.Trim(header, `"`), 10, 64)
	if err != nil || revision < 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "If-Match must quote a revision number", nil)
		return 0, false
	}
	return revision, true
}

func setRevisionHeader(c *gin.Context, revision int64) {
	c.Header("ETag", fmt.Sprintf("%q", strconv.FormatInt(revision, 10)))
}

// decodeSectionValue decodes a raw section payload into the typed value the
// reconciler expects. Unknown fields are rejected.
func decodeSectionValue(section Section, raw []byte) (any, error) {
	switch section {
	case SectionPersonalInfo:
		return decodeTyped[PersonalInfo](raw)
	case SectionExperience:
		return decodeTyped[[]WorkExperience](raw)
	case SectionEducation:
		return decodeTyped[[]EducationEntry](raw)
	case SectionSkills:
		return decodeTyped[[]SkillEntry](raw)
	case SectionProjects:
		return decodeTyped[[]ProjectEntry](raw)
	case SectionSocialLinks:
		return decodeTyped[[]SocialLinkEntry](raw)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSection, section)
}

func decodeTyped[T any](raw []byte) (T, error) {
	var out T
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return out, fmt.Errorf("invalid section payload: %w", err)
	}
	return out, nil
}

func decodeValue(raw json.RawMessage) (any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, err
	}
	return value, nil
}

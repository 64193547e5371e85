package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dar-ai/darai-docs/internal/core/domain"
)

const defaultListLimit = 10

// ErrorResponse represents an API error response
// @Description API error response
type ErrorResponse struct {
	Error string `json:"error" example:"property not found"`
}

// StatusResponse represents the service status response
// @Description Service status response
type StatusResponse struct {
	Status  string `json:"status" example:"healthy"`
	Service string `json:"service" example:"Dar.ai Document Service"`
}

// Health endpoints

// handleRoot godoc
// @Summary      Service status
// @Description  Returns the service name and liveness status
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       / [get]
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": ServiceName,
	})
}

// handleHealth godoc
// @Summary      Health check
// @Description  Returns service health including narrative provider connectivity
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	llm := "working"
	if err := s.narrative.Ping(r.Context()); err != nil {
		llm = "failed"
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":         "healthy",
		"service":        ServiceName,
		"version":        s.version,
		"llm_connection": llm,
	})
}

// Document endpoints

// handleCompare godoc
// @Summary      Property comparison PDF
// @Description  Generates a side-by-side comparison document for two properties
// @Tags         Documents
// @Produce      application/pdf
// @Param        property_id_1  query  int  true  "First property ID"
// @Param        property_id_2  query  int  true  "Second property ID"
// @Success      200  {file}    binary
// @Failure      400  {object}  ErrorResponse  "Non-integer property ID"
// @Failure      404  {object}  ErrorResponse  "One or both property IDs not found"
// @Failure      500  {object}  ErrorResponse  "Rendering failed"
// @Router       /compare [get]
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	id1, err := intQuery(r, "property_id_1")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	id2, err := intQuery(r, "property_id_2")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var missing []int
	a, err := s.catalog.GetProperty(r.Context(), id1)
	if err != nil {
		missing = append(missing, id1)
	}
	b, err := s.catalog.GetProperty(r.Context(), id2)
	if err != nil {
		missing = append(missing, id2)
	}
	if len(missing) > 0 {
		writeError(w, http.StatusNotFound,
			fmt.Sprintf("one or both property IDs not found: %s", joinInts(missing)))
		return
	}

	doc, err := s.documents.Comparison(r.Context(), a, b)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate comparison document")
		return
	}
	writePDF(w, doc)
}

// handleQuote godoc
// @Summary      Price quote PDF
// @Description  Generates a formal price quote for one property and contact
// @Tags         Documents
// @Produce      application/pdf
// @Param        property_id  query  int  true  "Property ID"
// @Param        contact_id   query  int  true  "Contact ID"
// @Success      200  {file}    binary
// @Failure      400  {object}  ErrorResponse  "Non-integer ID"
// @Failure      404  {object}  ErrorResponse  "Property or contact not found"
// @Failure      500  {object}  ErrorResponse  "Rendering failed"
// @Router       /quote [get]
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	propertyID, err := intQuery(r, "property_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	contactID, err := intQuery(r, "contact_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	property, err := s.catalog.GetProperty(r.Context(), propertyID)
	if err != nil {
		writeError(w, http.StatusNotFound, "property ID not found")
		return
	}
	contact, err := s.catalog.GetContact(r.Context(), contactID)
	if err != nil {
		writeError(w, http.StatusNotFound, "contact ID not found")
		return
	}

	doc, err := s.documents.Quote(r.Context(), property, contact)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate quote document")
		return
	}
	writePDF(w, doc)
}

// handleRecommend godoc
// @Summary      Recommendation PDF
// @Description  Generates a preference-matched recommendation of 2-3 properties for a contact
// @Tags         Documents
// @Produce      application/pdf
// @Param        property_ids  query  string  true  "Comma-separated property IDs (2 or 3)"
// @Param        contact_id    query  int     true  "Contact ID"
// @Success      200  {file}    binary
// @Failure      400  {object}  ErrorResponse  "Malformed ID list or wrong count"
// @Failure      404  {object}  ErrorResponse  "Properties or contact not found"
// @Failure      500  {object}  ErrorResponse  "Rendering failed"
// @Router       /recommend [get]
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	ids, err := parseIDList(r.URL.Query().Get("property_ids"))
	if err != nil {
		writeError(w, http.StatusBadRequest,
			"invalid property IDs format, use comma-separated integers (e.g. '1,2,3')")
		return
	}
	if len(ids) < 2 {
		writeError(w, http.StatusBadRequest, "at least 2 properties are required for a recommendation")
		return
	}
	if len(ids) > 3 {
		writeError(w, http.StatusBadRequest, "maximum 3 properties allowed for a recommendation")
		return
	}
	contactID, err := intQuery(r, "contact_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var properties []*domain.Property
	var missing []int
	for _, id := range ids {
		p, err := s.catalog.GetProperty(r.Context(), id)
		if err != nil {
			missing = append(missing, id)
			continue
		}
		properties = append(properties, p)
	}
	if len(missing) > 0 {
		writeError(w, http.StatusNotFound,
			fmt.Sprintf("properties not found: %s", joinInts(missing)))
		return
	}

	contact, err := s.catalog.GetContact(r.Context(), contactID)
	if err != nil {
		writeError(w, http.StatusNotFound, "contact ID not found")
		return
	}

	doc, err := s.documents.Recommendation(r.Context(), properties, contact)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to generate recommendation document")
		return
	}
	writePDF(w, doc)
}

// Data endpoints

// handleListProperties godoc
// @Summary      List properties
// @Description  Returns up to limit properties in load order
// @Tags         Data
// @Produce      json
// @Param        limit  query  int  false  "Maximum records"  default(10)
// @Success      200  {object}  map[string][]domain.Property
// @Router       /properties [get]
func (s *Server) handleListProperties(w http.ResponseWriter, r *http.Request) {
	limit := limitQuery(r)
	properties, err := s.catalog.ListProperties(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list properties")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"properties": properties})
}

// handleGetProperty godoc
// @Summary      Get property
// @Description  Returns a single property by ID
// @Tags         Data
// @Produce      json
// @Param        id  path  int  true  "Property ID"
// @Success      200  {object}  domain.Property
// @Failure      404  {object}  ErrorResponse  "Property not found"
// @Router       /properties/{id} [get]
func (s *Server) handleGetProperty(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid property ID")
		return
	}
	property, err := s.catalog.GetProperty(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "property not found")
		return
	}
	writeJSON(w, http.StatusOK, property)
}

// handleListContacts godoc
// @Summary      List contacts
// @Description  Returns up to limit contacts in load order
// @Tags         Data
// @Produce      json
// @Param        limit  query  int  false  "Maximum records"  default(10)
// @Success      200  {object}  map[string][]domain.Contact
// @Router       /contacts [get]
func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	limit := limitQuery(r)
	contacts, err := s.catalog.ListContacts(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list contacts")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"contacts": contacts})
}

// handleGetContact godoc
// @Summary      Get contact
// @Description  Returns a single contact by ID
// @Tags         Data
// @Produce      json
// @Param        id  path  int  true  "Contact ID"
// @Success      200  {object}  domain.Contact
// @Failure      404  {object}  ErrorResponse  "Contact not found"
// @Router       /contacts/{id} [get]
func (s *Server) handleGetContact(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid contact ID")
		return
	}
	contact, err := s.catalog.GetContact(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "contact not found")
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

// Query helpers

func intQuery(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("missing required parameter %q", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parameter %q must be an integer", name)
	}
	return v, nil
}

func limitQuery(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultListLimit
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return defaultListLimit
	}
	return v
}

func parseIDList(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("empty ID list")
	}
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid ID %q", part)
		}
		ids = append(ids, v)
	}
	return ids, nil
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}

// Response helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writePDF(w http.ResponseWriter, doc *domain.RenderedDocument) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Data)
}

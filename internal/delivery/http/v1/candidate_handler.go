package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"ats-backend/internal/delivery/http/response"
	"ats-backend/internal/domain"
	"ats-backend/pkg/apperror"
	"ats-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

const maxBodyBytes = 1 << 20

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(r gin.IRouter, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := r.Group("/candidate")
	{
		candidates.POST("", handler.Create)
		candidates.PUT("", handler.UpdateStatus)
		candidates.GET("/:id", handler.GetByID)
		candidates.POST("/search", handler.Search)
		candidates.POST("/search/by_name", handler.SearchByName)
		candidates.POST("/export", handler.Export)
	}
}

// Create godoc
// @Summary      Create a candidate
// @Description  Validates the closed creation payload and stores the candidate with its experience. New candidates start as APPLIED.
// @Tags         candidate
// @Accept       json
// @Produce      json
// @Param        payload  body      domain.CreateCandidateRequest  true  "Candidate and experience"
// @Success      200      {object}  response.Created
// @Failure      400      {object}  response.ErrorBody
// @Router       /candidate [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		c.Error(err)
		return
	}

	candidate, err := h.candidateUC.Create(c.Request.Context(), body)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, response.Created{
		ID:      candidate.ID,
		Message: domain.MsgCandidateCreated,
	})
}

// GetByID godoc
// @Summary      Get a candidate
// @Description  Returns a list holding the flattened candidate, or an empty list when the id is unknown.
// @Tags         candidate
// @Produce      json
// @Param        id   path      int  true  "Candidate ID"
// @Success      200  {array}   domain.CandidateRecord
// @Failure      400  {object}  response.ErrorBody
// @Router       /candidate/{id} [get]
func (h *CandidateHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.Invalid(domain.ErrValidation, domain.MsgIncorrectDatatype, errors.New("id must be an integer")))
		return
	}

	records, err := h.candidateUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, records)
}

// UpdateStatus godoc
// @Summary      Decide on a candidate
// @Description  Moves an APPLIED candidate to SHORTLISTED or REJECTED. Decided candidates cannot change again.
// @Tags         candidate
// @Accept       json
// @Produce      json
// @Param        payload  body      domain.UpdateStatusRequest  true  "id, status and optional reason"
// @Success      200      {object}  response.StatusUpdated
// @Failure      400      {object}  response.ErrorBody
// @Router       /candidate [put]
func (h *CandidateHandler) UpdateStatus(c *gin.Context) {
	var req domain.UpdateStatusRequest
	if err := decodeBody(c, &req); err != nil {
		c.Error(err)
		return
	}
	response.SetSubject(c, req.ID, req.Status)

	candidate, err := h.candidateUC.UpdateStatus(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, response.StatusUpdated{
		ID:      candidate.ID,
		Status:  string(candidate.Status),
		Message: domain.MsgStatusUpdated,
	})
}

// Search godoc
// @Summary      Filter candidates
// @Description  Every parameter is optional. Ranges apply only when both bounds are given.
// @Tags         candidate
// @Accept       json
// @Produce      json
// @Param        payload  body      domain.CandidateSearchRequest  false  "Filter parameters"
// @Success      200      {array}   domain.CandidateRecord
// @Failure      400      {object}  response.ErrorBody
// @Router       /candidate/search [post]
func (h *CandidateHandler) Search(c *gin.Context) {
	var req domain.CandidateSearchRequest
	if err := decodeBody(c, &req); err != nil {
		c.Error(err)
		return
	}

	records, err := h.candidateUC.Search(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, records)
}

// SearchByName godoc
// @Summary      Rank candidates by name
// @Description  Orders candidates by the number of words their name shares with the query. An exact name match ranks first.
// @Tags         candidate
// @Accept       json
// @Produce      json
// @Param        payload  body      domain.SearchByNameRequest  true  "Name query"
// @Success      200      {array}   domain.CandidateRecord
// @Failure      400      {object}  response.ErrorBody
// @Router       /candidate/search/by_name [post]
func (h *CandidateHandler) SearchByName(c *gin.Context) {
	var req domain.SearchByNameRequest
	if err := decodeBody(c, &req); err != nil {
		c.Error(err)
		return
	}

	records, err := h.candidateUC.SearchByName(c.Request.Context(), req.Name)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, records)
}

// Export godoc
// @Summary      Export candidates to Excel/CSV
// @Description  Downloads the candidates matching the filter parameters as an xlsx (default) or csv file
// @Tags         candidate
// @Accept       json
// @Produce      application/octet-stream
// @Param        payload  body      domain.CandidateExportRequest  false  "Filters, columns and format"
// @Success      200      {file}    binary
// @Failure      400      {object}  response.ErrorBody
// @Router       /candidate/export [post]
func (h *CandidateHandler) Export(c *gin.Context) {
	var req domain.CandidateExportRequest
	if err := decodeBody(c, &req); err != nil {
		c.Error(err)
		return
	}

	data, filename, err := h.candidateUC.Export(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	contentType := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if req.Format == "csv" {
		contentType = "text/csv"
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}

func readBody(c *gin.Context) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		return nil, apperror.Invalid(domain.ErrValidation, domain.MsgInvalidPayload, err)
	}
	return body, nil
}

// decodeBody leniently decodes an optional JSON body into dst.
func decodeBody(c *gin.Context, dst any) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}
	if err := validation.Decode(body, dst); err != nil {
		var de *validation.DecodeError
		if errors.As(err, &de) && de.Kind == validation.DecodeTypeMismatch {
			return apperror.Invalid(domain.ErrValidation, domain.MsgIncorrectDatatype, err)
		}
		return apperror.Invalid(domain.ErrValidation, domain.MsgInvalidPayload, err)
	}
	return nil
}

package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pdallen/portfolio/backend/internal/portfolio"
	"github.com/pdallen/portfolio/backend/internal/portfolio/service"
)

const contactThanks = "Thank you for your message! I'll get back to you soon."

// Handler serves the public portfolio API.
type Handler struct {
	svc     service.Service
	message string
}

// NewHandler returns a Handler; message is the greeting returned by GET /.
func NewHandler(svc service.Service, message string) *Handler {
	return &Handler{svc: svc, message: message}
}

// Register routes on rg (mounted under /api by the server).
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/", h.Root)
	rg.GET("/portfolio/data", h.PortfolioData)
	rg.GET("/projects", h.Projects)
	rg.GET("/skills", h.Skills)
	rg.POST("/contact/submit", h.SubmitContact)
	rg.POST("/audio/interaction", h.AudioInteraction)
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": h.message})
}

// PortfolioData always answers 200, with default content when the store has none.
func (h *Handler) PortfolioData(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.PortfolioData(c.Request.Context()))
}

func (h *Handler) Skills(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Skills(c.Request.Context()))
}

func (h *Handler) Projects(c *gin.Context) {
	list, err := h.svc.Projects(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to fetch projects"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": list})
}

func (h *Handler) SubmitContact(c *gin.Context) {
	var req portfolio.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindError(req, err))
		return
	}
	sub, err := h.svc.SubmitContact(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to submit contact form"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       contactThanks,
		"submission_id": sub.ID,
	})
}

// AudioInteraction records a player event. Store failures are reported in the
// body with a 200 status so playback is never disrupted.
func (h *Handler) AudioInteraction(c *gin.Context) {
	var req portfolio.AudioInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindError(req, err))
		return
	}
	if err := h.svc.LogAudioInteraction(c.Request.Context(), req, c.ClientIP()); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Failed to log interaction"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Interaction logged"})
}

// bindError builds the 400 body for a request that failed to bind. Field
// failures are keyed by their JSON name; decoder errors are not echoed.
func bindError(req any, err error) gin.H {
	body := gin.H{"detail": "Invalid request body"}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return body
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[jsonName(req, fe.StructField())] = fieldMessage(fe)
	}
	body["errors"] = fields
	return body
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	default:
		return "invalid value"
	}
}

func jsonName(req any, field string) string {
	t := reflect.TypeOf(req)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if sf, ok := t.FieldByName(field); ok {
		if name, _, _ := strings.Cut(sf.Tag.Get("json"), ","); name != "" {
			return name
		}
	}
	return strings.ToLower(field)
}

package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bloghub/internal/models"
	"bloghub/internal/services"
)

type ProfileHandler struct {
	profile services.ProfileService
	log     logrus.FieldLogger
}

func NewProfileHandler(profile services.ProfileService, log logrus.FieldLogger) *ProfileHandler {
	return &ProfileHandler{profile: profile, log: log}
}

// @Summary   Профиль текущего пользователя
// @Tags      Profile
// @Security  BearerAuth
// @Success   200  {object}  models.User
// @Router    /profile [get]
func (h *ProfileHandler) Profile(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}
	user, err := h.profile.Profile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, "[profile][get]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *ProfileHandler) ListLinks(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}
	links, err := h.profile.ListLinks(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, "[profile][links]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"links": links})
}

// @Summary   Добавить ссылку на соцсеть
// @Tags      Profile
// @Security  BearerAuth
// @Param     body  body  models.SocialMediaLinkRequest  true  "Platform and URL"
// @Success   201  {object}  models.SocialMediaLink
// @Failure   409  {object}  map[string]string
// @Router    /profile/socialMediaLinks [post]
func (h *ProfileHandler) AddLink(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}
	var req models.SocialMediaLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, bindError(err))
		return
	}
	link, err := h.profile.AddLink(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, h.log, "[profile][add-link]", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Social media link added", "link": link})
}

// @Summary   Обложка профиля
// @Tags      Profile
// @Security  BearerAuth
// @Accept    multipart/form-data
// @Param     coverImage  formData  file  true  "Cover image"
// @Router    /profile/profileCoverImage [put]
func (h *ProfileHandler) UpdateCoverImage(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}
	img, err := formImage(c, "coverImage")
	if err != nil {
		respondError(c, h.log, "[profile][cover]", err)
		return
	}
	if img == nil {
		respondValidation(c, services.NewValidationError("coverImage", "is required"))
		return
	}
	defer img.Close()

	user, err := h.profile.UpdateCoverImage(c.Request.Context(), userID, *img.object())
	if err != nil {
		respondError(c, h.log, "[profile][cover]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cover image updated", "user": user})
}

func (h *ProfileHandler) Activity(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}
	entries, err := h.profile.Activity(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, "[profile][activity]", err)
		return
	}
	if entries == nil {
		entries = []models.ActivityLog{}
	}
	c.JSON(http.StatusOK, gin.H{"activity": entries})
}

// @Summary   Отчёт об активности (PDF)
// @Tags      Profile
// @Security  BearerAuth
// @Produce   application/pdf
// @Router    /profile/userActivity/report [get]
func (h *ProfileHandler) ActivityReport(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}
	// сначала в буфер: при ошибке ещё можно ответить JSON
	var buf bytes.Buffer
	if err := h.profile.ActivityReport(c.Request.Context(), userID, &buf); err != nil {
		respondError(c, h.log, "[profile][report]", err)
		return
	}
	filename := fmt.Sprintf("activity_%d_%s.pdf", userID, time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

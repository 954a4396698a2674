package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bloghub/internal/models"
	"bloghub/internal/services"
)

type PostHandler struct {
	posts services.PostService
	log   logrus.FieldLogger
}

func NewPostHandler(posts services.PostService, log logrus.FieldLogger) *PostHandler {
	return &PostHandler{posts: posts, log: log}
}

// @Summary      Создать пост
// @Tags         Posts
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        title      formData  string  true   "Title"
// @Param        content    formData  string  true   "Content"
// @Param        postImage  formData  file    false  "Image"
// @Success      201  {object}  models.Post
// @Failure      422  {object}  map[string]interface{}
// @Router       /post [post]
func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}
	var req models.PostRequest
	if err := c.ShouldBind(&req); err != nil {
		respondValidation(c, bindError(err))
		return
	}
	img, err := formImage(c, "postImage")
	if err != nil {
		respondError(c, h.log, "[post][create]", err)
		return
	}
	defer img.Close()

	post, err := h.posts.Create(c.Request.Context(), userID, req, img.object())
	if err != nil {
		respondError(c, h.log, "[post][create]", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Post created", "post": post})
}

// @Summary      Список постов
// @Tags         Posts
// @Produce      json
// @Param        page   query  int  false  "Page (from 1)"
// @Param        limit  query  int  false  "Page size (max 100)"
// @Success      200  {object}  map[string]interface{}
// @Router       /post [get]
func (h *PostHandler) List(c *gin.Context) {
	page, ok := queryInt(c, "page", 1)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", services.DefaultPageSize)
	if !ok {
		return
	}
	if limit > services.MaxPageSize {
		limit = services.MaxPageSize
	}
	posts, err := h.posts.List(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, h.log, "[post][list]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts, "page": page, "limit": limit})
}

// @Summary  Пост по id
// @Tags     Posts
// @Param    id  path  int  true  "Post ID"
// @Success  200  {object}  models.Post
// @Failure  404  {object}  map[string]string
// @Router   /post/{id} [get]
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, "[post][get]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// @Summary   Обновить свой пост
// @Tags      Posts
// @Security  BearerAuth
// @Param     id    path  int                 true  "Post ID"
// @Param     body  body  models.PostRequest  true  "Post"
// @Failure   403  {object}  map[string]string
// @Router    /post/update/{id} [put]
func (h *PostHandler) Update(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req models.PostRequest
	if err := c.ShouldBind(&req); err != nil {
		respondValidation(c, bindError(err))
		return
	}
	post, err := h.posts.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		respondError(c, h.log, "[post][update]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post updated", "post": post})
}

// @Summary   Удалить свой пост
// @Tags      Posts
// @Security  BearerAuth
// @Param     id  path  int  true  "Post ID"
// @Router    /post/delete/{id} [delete]
func (h *PostHandler) Delete(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.posts.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, h.log, "[post][delete]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

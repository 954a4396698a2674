package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bloghub/internal/models"
	"bloghub/internal/services"
)

type CommentHandler struct {
	comments services.CommentService
	log      logrus.FieldLogger
}

func NewCommentHandler(comments services.CommentService, log logrus.FieldLogger) *CommentHandler {
	return &CommentHandler{comments: comments, log: log}
}

// @Summary  Комментарии поста
// @Tags     Comments
// @Param    post_id  path  int  true  "Post ID"
// @Router   /post/comment/{post_id} [get]
func (h *CommentHandler) List(c *gin.Context) {
	postID, ok := idParam(c, "post_id")
	if !ok {
		return
	}
	comments, err := h.comments.List(c.Request.Context(), postID)
	if err != nil {
		respondError(c, h.log, "[comment][list]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// @Summary   Комментировать пост
// @Tags      Comments
// @Security  BearerAuth
// @Param     post_id  path  int                    true  "Post ID"
// @Param     body     body  models.CommentRequest  true  "Comment"
// @Success   201  {object}  models.Comment
// @Router    /post/comment/{post_id} [post]
func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}
	postID, ok := idParam(c, "post_id")
	if !ok {
		return
	}
	var req models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, bindError(err))
		return
	}
	comment, err := h.comments.Create(c.Request.Context(), userID, postID, req.Comment)
	if err != nil {
		respondError(c, h.log, "[comment][create]", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Comment added", "comment": comment})
}

func (h *CommentHandler) Update(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "comment_id")
	if !ok {
		return
	}
	var req models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, bindError(err))
		return
	}
	comment, err := h.comments.Update(c.Request.Context(), userID, id, req.Comment)
	if err != nil {
		respondError(c, h.log, "[comment][update]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment updated", "comment": comment})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	userID, ok := principalID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "comment_id")
	if !ok {
		return
	}
	if err := h.comments.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, h.log, "[comment][delete]", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}

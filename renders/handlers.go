package renders

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/Teempact/script-to-video-gen/models"
	"github.com/Teempact/script-to-video-gen/processing"
	"github.com/Teempact/script-to-video-gen/tasks"
)

type Handler struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewHandler(db *gorm.DB, rdb *redis.Client) *Handler {
	return &Handler{DB: db, Redis: rdb}
}

type CreateRenderRequest struct {
	Script   string `json:"script" binding:"required"`
	Keywords string `json:"keywords"`
}

// CreateRender accepts a script, stores the render request, and queues
// it for the worker.
func (h *Handler) CreateRender(c *gin.Context) {
	var req CreateRenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Empty scripts are rejected before anything is queued.
	if strings.TrimSpace(req.Script) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Script is empty"})
		return
	}

	render := models.Render{
		Script:   req.Script,
		Keywords: req.Keywords,
		Status:   "pending",
	}
	if err := h.DB.Create(&render).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create render"})
		return
	}

	payload, err := tasks.Marshal(tasks.RenderTaskPayload{RenderID: render.ID})
	if err != nil {
		log.Printf("Error marshalling render task: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to queue render"})
		return
	}
	if err := h.Redis.LPush(c.Request.Context(), tasks.QueueVideoRender, payload).Err(); err != nil {
		log.Printf("Error pushing to queue %s: %v", tasks.QueueVideoRender, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to queue render"})
		return
	}

	c.JSON(http.StatusOK, render)
}

// GetRenders lists recent renders, newest first.
func (h *Handler) GetRenders(c *gin.Context) {
	var renders []models.Render
	if err := h.DB.Order("created_at DESC").Limit(50).Find(&renders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve renders"})
		return
	}

	c.JSON(http.StatusOK, renders)
}

// GetRender returns one render with its scene breakdown.
func (h *Handler) GetRender(c *gin.Context) {
	render, ok := h.findRender(c)
	if !ok {
		return
	}

	var scenes []models.RenderScene
	if err := h.DB.Where("render_id = ?", render.ID).Order("scene_number").Find(&scenes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve scenes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"render": render, "scenes": scenes})
}

// DownloadRender serves the finished MP4.
func (h *Handler) DownloadRender(c *gin.Context) {
	render, ok := h.findRender(c)
	if !ok {
		return
	}

	if render.Status != "complete" || render.OutputPath == "" {
		c.JSON(http.StatusConflict, gin.H{"error": "Render is not complete", "status": render.Status})
		return
	}
	if _, err := os.Stat(render.OutputPath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Output file no longer exists"})
		return
	}

	c.FileAttachment(render.OutputPath, "video.mp4")
}

type GenerateScriptRequest struct {
	Topic string `json:"topic" binding:"required"`
	Tone  string `json:"tone"`
}

// GenerateScript drafts a narration script for a topic so the user can
// edit it before rendering.
func (h *Handler) GenerateScript(c *gin.Context) {
	var req GenerateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	script, err := processing.GenerateScript(c.Request.Context(), os.Getenv("OPENAI_API_KEY"), req.Topic, req.Tone)
	if err != nil {
		log.Printf("Error generating script: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate script"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"script": script})
}

func (h *Handler) findRender(c *gin.Context) (*models.Render, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid render ID"})
		return nil, false
	}

	var render models.Render
	if err := h.DB.First(&render, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Render not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return nil, false
	}
	return &render, true
}

package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leon37/InkwellBlog/internal/api/middleware"
	"github.com/leon37/InkwellBlog/internal/api/response"
	"github.com/leon37/InkwellBlog/internal/infrastructure/storage"
	"github.com/leon37/InkwellBlog/internal/model"
	"github.com/leon37/InkwellBlog/internal/service"
)

type PostController struct {
	service *service.PostService // 依赖 Service
	uploads *storage.LocalStore
}

// NewPostController 构造函数
func NewPostController(s *service.PostService, uploads *storage.LocalStore) *PostController {
	return &PostController{service: s, uploads: uploads}
}

// ==========================================
// DTOs (请求/响应参数定义)
// ==========================================

// PostAuthor 列表/详情里随帖子返回的作者信息，只带 id 和用户名
type PostAuthor struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type PostResponse struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Summary   string      `json:"summary"`
	Content   string      `json:"content"`
	Cover     string      `json:"cover"`
	AuthorID  string      `json:"author_id"`
	Author    *PostAuthor `json:"author,omitempty"`
	Likes     int         `json:"likes"`
	LikedBy   []string    `json:"liked_by"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func toPostResponse(p *model.Post) PostResponse {
	rsp := PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Summary:   p.Summary,
		Content:   p.Content,
		Cover:     p.Cover,
		AuthorID:  p.AuthorID,
		Likes:     p.Likes,
		LikedBy:   p.LikedBy,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Author != nil {
		rsp.Author = &PostAuthor{ID: p.Author.ID, Username: p.Author.Username}
	}
	return rsp
}

// ==========================================
// Handlers
// ==========================================

// Create 发布帖子
// @Summary 发布帖子
// @Description multipart 表单：file 为封面文件（必填），外加 title/summary/content
// @Tags Post
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "封面文件"
// @Param title formData string true "标题"
// @Param summary formData string true "摘要"
// @Param content formData string true "正文"
// @Success 201 {object} response.Response{data=controller.PostResponse}
// @Failure 400 {object} response.Response "缺文件或缺字段"
// @Router /post [post]
func (ctrl *PostController) Create(c *gin.Context) {
	authorID := c.GetString(middleware.CtxUserIDKey)

	// 1. 封面文件必填
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "封面文件不能为空")
		return
	}

	// 2. 文件先落盘，拿到路径再走业务
	coverPath, err := ctrl.uploads.Save(fileHeader)
	if err != nil {
		slog.Error("封面文件保存失败", "filename", fileHeader.Filename, "error", err)
		response.Error(c, http.StatusInternalServerError, "文件保存失败")
		return
	}

	// 3. 调用 Service 业务逻辑
	input := service.PostInput{
		Title:   c.PostForm("title"),
		Summary: c.PostForm("summary"),
		Content: c.PostForm("content"),
	}
	post, err := ctrl.service.Create(c.Request.Context(), input, coverPath, authorID)
	if err != nil {
		if errors.Is(err, service.ErrMissingField) {
			response.Error(c, http.StatusBadRequest, "参数错误: "+err.Error())
			return
		}
		slog.Error("创建帖子失败", "error", err)
		response.Error(c, http.StatusInternalServerError, "创建帖子失败")
		return
	}

	slog.Info("帖子已创建", "postID", post.ID, "authorID", authorID)
	response.Created(c, toPostResponse(post))
}

// List 最新帖子列表
// @Summary 最新帖子列表
// @Description 最多 20 条，按创建时间倒序，作者只带 id 和用户名
// @Tags Post
// @Produce json
// @Success 200 {object} response.Response{data=[]controller.PostResponse}
// @Router /post [get]
func (ctrl *PostController) List(c *gin.Context) {
	posts, err := ctrl.service.ListRecent(c.Request.Context())
	if err != nil {
		slog.Error("获取帖子列表失败", "error", err)
		response.Error(c, http.StatusInternalServerError, "获取列表失败")
		return
	}

	list := make([]PostResponse, 0, len(posts))
	for i := range posts {
		list = append(list, toPostResponse(&posts[i]))
	}
	response.Success(c, list)
}

// Get 帖子详情
// @Summary 帖子详情
// @Tags Post
// @Produce json
// @Param id path string true "帖子 ID"
// @Success 200 {object} response.Response{data=controller.PostResponse}
// @Failure 404 {object} response.Response "帖子不存在"
// @Router /post/{id} [get]
func (ctrl *PostController) Get(c *gin.Context) {
	id := c.Param("id")

	post, err := ctrl.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.Error(c, http.StatusNotFound, "帖子不存在")
			return
		}
		slog.Error("获取帖子失败", "id", id, "error", err)
		response.Error(c, http.StatusInternalServerError, "获取帖子失败")
		return
	}
	response.Success(c, toPostResponse(post))
}

// Update 更新帖子
// @Summary 更新帖子
// @Description 仅限作者本人；file 可选，不传则保留原封面
// @Tags Post
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "帖子 ID"
// @Param file formData file false "新封面文件"
// @Param title formData string false "标题"
// @Param summary formData string false "摘要"
// @Param content formData string false "正文"
// @Success 200 {object} response.Response{data=controller.PostResponse}
// @Failure 403 {object} response.Response "不是作者本人"
// @Failure 404 {object} response.Response "帖子不存在"
// @Router /post/{id} [put]
func (ctrl *PostController) Update(c *gin.Context) {
	id := c.Param("id")
	callerID := c.GetString(middleware.CtxUserIDKey)

	// 1. 封面文件可选，带了才落盘
	var newCoverPath string
	if fileHeader, err := c.FormFile("file"); err == nil {
		newCoverPath, err = ctrl.uploads.Save(fileHeader)
		if err != nil {
			slog.Error("封面文件保存失败", "filename", fileHeader.Filename, "error", err)
			response.Error(c, http.StatusInternalServerError, "文件保存失败")
			return
		}
	}

	// 2. 调用 Service 业务逻辑
	input := service.PostInput{
		Title:   c.PostForm("title"),
		Summary: c.PostForm("summary"),
		Content: c.PostForm("content"),
	}
	post, err := ctrl.service.Update(c.Request.Context(), id, input, newCoverPath, callerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			response.Error(c, http.StatusNotFound, "帖子不存在")
		case errors.Is(err, service.ErrNotAuthor):
			response.Error(c, http.StatusForbidden, "只有作者本人可以更新帖子")
		default:
			slog.Error("更新帖子失败", "id", id, "error", err)
			response.Error(c, http.StatusInternalServerError, "更新帖子失败")
		}
		return
	}

	slog.Info("帖子已更新", "postID", post.ID)
	response.Success(c, toPostResponse(post))
}

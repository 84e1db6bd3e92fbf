package api

import (
	"log/slog"
	"net/http"

	"github.com/blogdev/blog-api/internal/api/shared"
	"github.com/blogdev/blog-api/internal/platform/logger"
	"github.com/blogdev/blog-api/internal/service"
	"github.com/go-chi/chi/v5"
)

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	postService service.PostService
	logger      *slog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService service.PostService, logger *slog.Logger) *PostHandler {
	if postService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("postService cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostHandler{
		postService: postService,
		logger:      logger.With(slog.String("component", "post_handler")),
	}
}

// Routes mounts the post endpoints on r. The caller decides the prefix.
func (h *PostHandler) Routes(r chi.Router) {
	r.Post("/", h.CreatePost)
	r.Get("/", h.ListPosts)
	r.Get("/{id}", h.GetPost)
	r.Put("/{id}", h.UpdatePost)
	r.Delete("/{id}", h.DeletePost)
}

// decodePostView reads and validates a PostView from the request body.
// It writes the error response itself and reports whether decoding succeeded.
func (h *PostHandler) decodePostView(w http.ResponseWriter, r *http.Request) (PostView, bool) {
	var view PostView
	if err := shared.DecodeJSON(r, &view); err != nil {
		HandleAPIError(w, r, err, "Invalid request format")
		return PostView{}, false
	}

	if err := shared.ValidateRequest(&view); err != nil {
		HandleAPIError(w, r, err, "")
		return PostView{}, false
	}

	return view, true
}

// CreatePost handles POST /api/post requests
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	view, ok := h.decodePostView(w, r)
	if !ok {
		return
	}

	post := postViewToPost(view)

	created, err := h.postService.CreatePost(r.Context(), post.Title, post.Body)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postToView(created))
}

// ListPosts handles GET /api/post requests
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.ListPosts(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postsToViews(posts))
}

// GetPost handles GET /api/post/{id} requests
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		h.logInvalidID(r)
		HandleAPIError(w, r, err, "")
		return
	}

	post, err := h.postService.GetPost(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postToView(post))
}

// UpdatePost handles PUT /api/post/{id} requests.
// The body is validated before the post is looked up.
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		h.logInvalidID(r)
		HandleAPIError(w, r, err, "")
		return
	}

	view, ok := h.decodePostView(w, r)
	if !ok {
		return
	}

	updated, err := h.postService.UpdatePost(r.Context(), id, view.Title, view.Body)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postToView(updated))
}

// DeletePost handles DELETE /api/post/{id} requests
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		h.logInvalidID(r)
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.postService.DeletePost(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithStatus(w, http.StatusNoContent)
}

func (h *PostHandler) logInvalidID(r *http.Request) {
	logger.FromContextOrDefault(r.Context(), h.logger).Debug("invalid post id",
		slog.String("value", chi.URLParam(r, "id")))
}

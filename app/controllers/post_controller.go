package controllers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"inkwell/app/models"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// PageSize is the fixed number of posts per list page.
const PageSize = 10

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// postListResponse is the pagination envelope for the post list.
type postListResponse struct {
	Count    int                  `json:"count"`
	Next     *string              `json:"next"`
	Previous *string              `json:"previous"`
	Results  []models.PostSummary `json:"results"`
}

// Index handles listing all posts, paginated, newest first, in the summary
// projection.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}
	offset := (page - 1) * PageSize

	posts, total, err := pc.postService.ListPosts(PageSize, offset)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	if page > 1 && offset >= total {
		sendError(w, "Invalid page.", http.StatusNotFound)
		return
	}

	results := make([]models.PostSummary, 0, len(posts))
	for _, post := range posts {
		results = append(results, post.Summary())
	}

	resp := postListResponse{
		Count:   total,
		Results: results,
	}
	if offset+PageSize < total {
		resp.Next = pageURL(r, page+1)
	}
	if page > 1 {
		resp.Previous = pageURL(r, page-1)
	}

	sendJSON(w, http.StatusOK, resp)
}

// pageURL rebuilds the request URL with the given page number.
func pageURL(r *http.Request, page int) *string {
	u := url.URL{
		Scheme: "http",
		Host:   r.Host,
		Path:   r.URL.Path,
	}
	if r.TLS != nil {
		u.Scheme = "https"
	}
	q := r.URL.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	s := u.String()
	return &s
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.PostInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post, err := pc.postService.CreatePost(&in)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, post)
}

// Show handles retrieving a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, post)
}

// Update handles a full update; title, content and author must all be
// supplied.
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	pc.update(w, r, false)
}

// Patch handles a partial update; only the supplied fields change.
func (pc *PostController) Patch(w http.ResponseWriter, r *http.Request) {
	pc.update(w, r, true)
}

func (pc *PostController) update(w http.ResponseWriter, r *http.Request, partial bool) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	var in models.PostInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post, err := pc.postService.UpdatePost(id, &in, partial)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, post)
}

// Delete handles deleting a post along with its comments
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	if err := pc.postService.DeletePost(id); err != nil {
		sendServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

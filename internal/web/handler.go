package web

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/brogergvhs/hqnews/internal/comic"
	"github.com/brogergvhs/hqnews/internal/news"
	"github.com/brogergvhs/hqnews/internal/render"
	"github.com/brogergvhs/hqnews/internal/script"

	"github.com/gin-gonic/gin"
)

type generateRequest struct {
	Mode   string `json:"mode" form:"mode"`
	Title  string `json:"title" form:"title"`
	Link   string `json:"link" form:"link"`
	URL    string `json:"url" form:"url"`
	UseAI  bool   `json:"use_ai" form:"use_ai"`
	APIKey string `json:"api_key" form:"api_key"`
}

func (s *Server) Index(c *gin.Context) {
	s.page(c, http.StatusOK, render.Page{Form: render.Form{Mode: news.ModeAutomatic}})
}

func (s *Server) Generate(c *gin.Context) {
	var in generateRequest
	if err := c.ShouldBind(&in); err != nil {
		s.page(c, http.StatusBadRequest, render.Page{Error: "Formulário inválido."})
		return
	}

	form := render.Form{Mode: news.Mode(in.Mode), Title: in.Title, Link: in.Link, URL: in.URL, UseAI: in.UseAI}

	result, status, err := s.build(c, in)
	if err != nil {
		s.page(c, status, render.Page{Form: form, Error: userMessage(err)})
		return
	}

	state, err := comic.EncodeState(result)
	if errors.Is(err, comic.ErrStateTooLarge) {
		s.log.Slog().Warn("result too large to download", "error", err)
		s.page(c, http.StatusOK, render.Page{
			Form:   form,
			Result: result,
			Error:  "HQ gerada, mas grande demais para download. Use um link mais curto.",
		})
		return
	}
	if err != nil {
		s.log.Slog().Error("error encoding state", "error", err)
		s.page(c, http.StatusInternalServerError, render.Page{Form: form, Error: "Erro interno."})
		return
	}

	s.page(c, http.StatusOK, render.Page{Form: form, Result: result, State: state})
}

func (s *Server) APIGenerate(c *gin.Context) {
	var in generateRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	result, status, err := s.build(c, in)
	if err != nil {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) Download(c *gin.Context) {
	result, err := comic.DecodeState(c.PostForm("state"))
	if err != nil {
		s.log.Slog().Warn("invalid download state", "error", err)
		c.String(http.StatusBadRequest, "Nenhuma HQ para baixar. Gere uma nova HQ primeiro.")
		return
	}

	var buf bytes.Buffer
	if err := render.Export(&buf, result); err != nil {
		s.log.Slog().Error("error rendering export", "error", err)
		c.String(http.StatusInternalServerError, "Erro ao gerar HTML.")
		return
	}

	s.stats.Exports.Add(1)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", render.ExportFilename))
	c.Data(http.StatusOK, render.ExportMIME+"; charset=utf-8", buf.Bytes())
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"stats":  s.stats.Snapshot(),
	})
}

// build resolves and generates, mapping failures to an HTTP status.
func (s *Server) build(c *gin.Context, in generateRequest) (*comic.GenerationResult, int, error) {
	mode, err := news.ParseMode(in.Mode)
	if err != nil {
		s.stats.Failures.Add(1)
		return nil, http.StatusBadRequest, err
	}

	key := strings.TrimSpace(in.APIKey)
	if key == "" {
		key = s.opts.DefaultAPIKey
	}

	req := news.Request{Mode: mode, Title: in.Title, Link: in.Link, URL: in.URL}
	result, err := s.builder.Build(c.Request.Context(), req, comic.Options{UseAI: in.UseAI, APIKey: key})
	if err != nil {
		s.stats.Failures.Add(1)
		s.log.Slog().Warn("generation failed", "mode", mode, "error", err)
		return nil, statusFor(err), err
	}

	s.stats.Generations.Add(1)
	if result.Fallback {
		s.stats.Fallbacks.Add(1)
	}
	if result.Generator != script.TemplateName {
		s.stats.AIScripts.Add(1)
	}

	s.log.Slog().Info("comic generated",
		"mode", mode,
		"source", result.Item.Source,
		"bucket", result.Bucket,
		"generator", result.Generator,
	)

	return result, http.StatusOK, nil
}

func statusFor(err error) int {
	var fe *news.FetchError
	switch {
	case errors.Is(err, news.ErrUnknownMode), errors.Is(err, news.ErrMissingURL):
		return http.StatusBadRequest
	case errors.As(err, &fe):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func userMessage(err error) string {
	var fe *news.FetchError
	switch {
	case errors.Is(err, news.ErrUnknownMode):
		return "Fonte de notícia desconhecida."
	case errors.Is(err, news.ErrMissingURL):
		return "Informe a URL da notícia."
	case errors.As(err, &fe):
		return fmt.Sprintf("Não foi possível extrair a notícia da URL informada (%s).", fe.Kind)
	default:
		return "Erro ao gerar HQ."
	}
}

func (s *Server) page(c *gin.Context, status int, p render.Page) {
	var buf bytes.Buffer
	if err := render.Screen(&buf, p); err != nil {
		s.log.Slog().Error("error rendering page", "error", err)
		c.String(http.StatusInternalServerError, "Erro ao renderizar página.")
		return
	}

	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
)

// maxUploadBytes caps résumé uploads at 10 MiB.
const maxUploadBytes = 10 << 20

var validate = validator.New()

// matchRequest is the decoded body of POST /match. Multipart uploads fill
// ResumeText from the extracted document text.
type matchRequest struct {
	ResumeText string `json:"resume_text" validate:"required,min=1"`
	Mode       string `json:"mode" validate:"omitempty,oneof=skills roles"`
	Location   string `json:"location"`
}

// matchResponse is the body of a successful POST /match.
type matchResponse struct {
	Mode     string            `json:"mode"`
	Location string            `json:"location"`
	Profile  types.Profile     `json:"profile"`
	Matches  []types.RankedJob `json:"matches"`
}

// handleMatch runs the full pipeline for one résumé: decode the document,
// extract a profile, then filter, retrieve, score, and rank the corpus.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeMatchRequest(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	if err := validate.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			s.errorResponse(w, &ErrValidation{Field: errs[0].Field(), Message: errs[0].Tag()})
			return
		}
		s.errorResponse(w, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}

	cfg := s.matchConfig(req.Mode)

	var profile types.Profile
	if cfg.Mode == matching.ModeRoles {
		profile = s.extractor.RecommendRoles(r.Context(), req.ResumeText)
	} else {
		profile = s.extractor.ExtractSkills(r.Context(), req.ResumeText)
	}

	matcher := matching.New(s.jobs, cfg)
	matches := matcher.Match(r.Context(), req.ResumeText, profile, req.Location)
	if matches == nil {
		matches = []types.RankedJob{}
	}

	location := req.Location
	if location == "" {
		location = cfg.Location
	}

	s.jsonResponse(w, http.StatusOK, matchResponse{
		Mode:     string(cfg.Mode),
		Location: location,
		Profile:  profile,
		Matches:  matches,
	})
}

// decodeMatchRequest accepts either a JSON body or a multipart form with a
// "resume" file part plus optional "mode" and "location" fields.
func (s *Server) decodeMatchRequest(r *http.Request) (*matchRequest, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		return s.decodeMultipart(r)
	}

	var req matchRequest
	r.Body = http.MaxBytesReader(nil, r.Body, maxUploadBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, &ErrValidation{Field: "body", Message: "invalid JSON body"}
	}
	return &req, nil
}

func (s *Server) decodeMultipart(r *http.Request) (*matchRequest, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, &ErrValidation{Field: "body", Message: "invalid multipart form"}
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		return nil, &ErrValidation{Field: "resume", Message: "missing resume file"}
	}
	defer func() { _ = file.Close() }()

	fileType := header.Header.Get("Content-Type")
	text, err := ingestion.ExtractText(file, fileType)
	if err != nil {
		return nil, &ErrUnreadableDocument{ContentType: fileType, Cause: err}
	}

	return &matchRequest{
		ResumeText: ingestion.CleanText(text),
		Mode:       r.FormValue("mode"),
		Location:   r.FormValue("location"),
	}, nil
}

// matchConfig resolves the per-request mode against the server defaults.
func (s *Server) matchConfig(mode string) matching.Config {
	switch matching.Mode(mode) {
	case matching.ModeSkills:
		cfg := matching.SkillsConfig()
		cfg.Location = s.defaults.Location
		return cfg
	case matching.ModeRoles:
		cfg := matching.RolesConfig()
		cfg.Location = s.defaults.Location
		return cfg
	default:
		return s.defaults
	}
}

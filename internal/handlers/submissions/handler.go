package submissions

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/gwc-sys/StackHack.live-sub000/internal/core/ports/primary"
	"github.com/gwc-sys/StackHack.live-sub000/internal/core/ports/secondary"
	"github.com/gwc-sys/StackHack.live-sub000/internal/core/services/judge"
	"github.com/gwc-sys/StackHack.live-sub000/internal/domain"
	"github.com/gwc-sys/StackHack.live-sub000/internal/handlers"
	"github.com/gwc-sys/StackHack.live-sub000/internal/handlers/response"
	"github.com/gwc-sys/StackHack.live-sub000/internal/static/errs"
)

// ApiHandler handles submission judging requests
type ApiHandler struct {
	judgeService   judge.IJudgeService
	problemRepo    secondary.ProblemRepository
	submissionRepo secondary.SubmissionRepository
	logger         primary.Logger
}

// NewHandler creates a new submissions handler
func NewHandler(
	judgeService judge.IJudgeService,
	problemRepo secondary.ProblemRepository,
	submissionRepo secondary.SubmissionRepository,
	logger primary.Logger,
) *ApiHandler {
	return &ApiHandler{
		judgeService:   judgeService,
		problemRepo:    problemRepo,
		submissionRepo: submissionRepo,
		logger:         logger,
	}
}

// Register registers the API routes for ApiHandler on the /api subrouter.
func (api *ApiHandler) Register(r *mux.Router) {
	r.HandleFunc("/submissions/run", api.Run).Methods("POST")
	r.HandleFunc("/submissions", api.Submit).Methods("POST")
	r.HandleFunc("/submissions/{submissionId}", api.GetVerdict).Methods("GET")
}

// Run judges a submission against the problem's sample test cases only, so an
// ungraded run never exercises hidden tests. No progress side effect and no
// persistence.
func (api *ApiHandler) Run(w http.ResponseWriter, r *http.Request) {
	req, ok := api.decodeRequest(w, r)
	if !ok {
		return
	}

	testCases, err := api.problemRepo.GetSampleTestCases(r.Context(), req.ProblemID)
	if err != nil {
		api.logger.Error("Failed to load sample test cases", "problem_id", req.ProblemID, "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "failed to load test cases", StatusCode: http.StatusInternalServerError})
		return
	}

	submission := domain.NewSubmission(req.ProblemID, req.SourceCode, domain.Language(req.Language), domain.ModeRun)
	api.judgeAndRespond(w, r, submission, testCases)
}

// Submit judges a submission against the full test-case set. The verdict and
// submission are persisted best-effort; a storage failure never blocks verdict
// delivery.
func (api *ApiHandler) Submit(w http.ResponseWriter, r *http.Request) {
	req, ok := api.decodeRequest(w, r)
	if !ok {
		return
	}

	testCases, err := api.problemRepo.GetTestCases(r.Context(), req.ProblemID)
	if err != nil {
		api.logger.Error("Failed to load test cases", "problem_id", req.ProblemID, "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "failed to load test cases", StatusCode: http.StatusInternalServerError})
		return
	}

	submission := domain.NewSubmission(req.ProblemID, req.SourceCode, domain.Language(req.Language), domain.ModeSubmit)
	verdict := api.judgeAndRespond(w, r, submission, testCases)
	if verdict == nil {
		return
	}

	if err := api.submissionRepo.SaveSubmission(r.Context(), submission); err != nil {
		api.logger.Warn("Failed to persist submission", "submission_id", submission.ID, "error", err)
		return
	}
	if err := api.submissionRepo.SaveVerdict(r.Context(), verdict); err != nil {
		api.logger.Warn("Failed to persist verdict", "submission_id", submission.ID, "error", err)
	}
}

// GetVerdict returns the stored verdict for an earlier graded submission.
func (api *ApiHandler) GetVerdict(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	submissionID, err := uuid.Parse(vars["submissionId"])
	if err != nil {
		response.WriteError(w, response.ErrorMessage{Message: "invalid submission id", StatusCode: http.StatusBadRequest})
		return
	}

	verdict, err := api.submissionRepo.GetVerdict(r.Context(), submissionID)
	if errors.Is(err, errs.ErrSubmissionNotFound) {
		response.WriteError(w, response.ErrorMessage{Message: "submission not found", StatusCode: http.StatusNotFound})
		return
	}
	if err != nil {
		api.logger.Error("Failed to get verdict", "submission_id", submissionID, "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "failed to get verdict", StatusCode: http.StatusInternalServerError})
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, toVerdictResponse(verdict))
}

func (api *ApiHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (*JudgeRequest, bool) {
	var req JudgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, response.ErrorMessage{Message: "invalid request body", StatusCode: http.StatusBadRequest})
		return nil, false
	}
	if req.ProblemID == "" || req.SourceCode == "" {
		response.WriteError(w, response.ErrorMessage{Message: "problem_id and source_code are required", StatusCode: http.StatusBadRequest})
		return nil, false
	}
	if !domain.Language(req.Language).Supported() {
		response.WriteError(w, response.ErrorMessage{Message: "unsupported language", StatusCode: http.StatusBadRequest})
		return nil, false
	}
	return &req, true
}

// judgeAndRespond runs the judge and writes the verdict. Returns nil when an
// error response was already written.
func (api *ApiHandler) judgeAndRespond(w http.ResponseWriter, r *http.Request, submission *domain.Submission, testCases []*domain.TestCase) *domain.Verdict {
	verdict, err := api.judgeService.Judge(r.Context(), submission, testCases)
	if errors.Is(err, errs.ErrNoTestCases) {
		response.WriteError(w, response.ErrorMessage{Message: "problem has no test cases", StatusCode: http.StatusUnprocessableEntity})
		return nil
	}
	if err != nil {
		api.logger.Error("Judging failed", "submission_id", submission.ID, "error", err)
		response.WriteError(w, response.ErrorMessage{Message: "judging failed", StatusCode: http.StatusInternalServerError})
		return nil
	}

	handlers.ResponseWithJson(w, http.StatusOK, toVerdictResponse(verdict))
	return verdict
}

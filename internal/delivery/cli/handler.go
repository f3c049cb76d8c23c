package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jadenpinto/QuizzifyApp/internal/domain/entities"
	"github.com/jadenpinto/QuizzifyApp/internal/storage"
)

type QuizService interface {
	Start(ctx context.Context, subject string) (*entities.QuizSession, error)
	Finish(session *entities.QuizSession) entities.QuizResult
}

type QuestionService interface {
	NewDraft() *entities.QuestionEditor
	Edit(ctx context.Context, id int64) (*entities.QuestionEditor, error)
	Save(ed *entities.QuestionEditor) (*storage.Pending, error)
	Delete(q entities.Question) *storage.Pending
	List(ctx context.Context, subject string) ([]entities.Question, error)
	Get(ctx context.Context, id int64) (entities.Question, error)
	Subjects(ctx context.Context) ([]string, error)
}

const defaultCommandTimeout = 5 * time.Second

// Handler is the interactive terminal front-end. It reads one command per line and
// owns the quiz session or question editor in progress.
type Handler struct {
	in              io.Reader
	out             io.Writer
	logger          *zap.Logger
	quizService     QuizService
	questionService QuestionService
	timeout         time.Duration

	quiz   *entities.QuizSession
	editor *entities.QuestionEditor
}

func NewHandler(
	in io.Reader,
	out io.Writer,
	logger *zap.Logger,
	quizService QuizService,
	questionService QuestionService,
) *Handler {
	return &Handler{
		in:              in,
		out:             out,
		logger:          logger,
		quizService:     quizService,
		questionService: questionService,
		timeout:         defaultCommandTimeout,
	}
}

// Run processes input until /quit, end of input or ctx cancellation.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("cli handler started")
	defer h.logger.Info("cli handler stopped")

	lines := make(chan string)
	go h.readLines(ctx, lines)

	h.send(msgWelcome)
	h.prompt()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := h.handleLine(ctx, line); quit {
				h.send(msgGoodbye)
				return nil
			}
			h.prompt()
		}
	}
}

func (h *Handler) readLines(ctx context.Context, lines chan<- string) {
	defer close(lines)

	scanner := bufio.NewScanner(h.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		h.logger.Error("failed to read input", zap.Error(err))
	}
}

func (h *Handler) handleLine(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)

	h.logger.Debug("input received", zap.String("text", line))

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	cmd, args := splitCommand(line)
	if cmd == "/quit" || cmd == "/exit" {
		return true
	}

	switch {
	case h.quiz != nil:
		_ = h.withErrorHandling(h.handleQuizInput(line))(ctx)
	case h.editor != nil:
		_ = h.withErrorHandling(h.handleEditorInput(line))(ctx)
	case strings.HasPrefix(line, "/"):
		h.handleCommand(ctx, cmd, args)
	case line == "":
	default:
		h.send(msgUnknownCommand)
	}

	return false
}

func (h *Handler) handleCommand(ctx context.Context, cmd, args string) {
	switch cmd {
	case "/start":
		h.send(msgWelcome)

	case "/help":
		h.send(msgHelp)

	case "/all", "/questions":
		_ = h.withErrorHandling(h.handleAll(args))(ctx)

	case "/subjects":
		_ = h.withErrorHandling(h.handleSubjects())(ctx)

	case "/show":
		_ = h.withErrorHandling(h.handleShow(args))(ctx)

	case "/add":
		_ = h.withErrorHandling(h.handleAdd())(ctx)

	case "/edit":
		_ = h.withErrorHandling(h.handleEdit(args))(ctx)

	case "/delete":
		_ = h.withErrorHandling(h.handleDelete(args))(ctx)

	case "/quiz":
		_ = h.withErrorHandling(h.handleQuizStart(args))(ctx)

	default:
		h.send(msgUnknownCommand)
	}
}

func (h *Handler) prompt() {
	p := "> "
	switch {
	case h.quiz != nil:
		p = "quiz> "
	case h.editor != nil:
		p = "edit> "
	}
	if _, err := fmt.Fprint(h.out, p); err != nil {
		h.logger.Error("failed to write prompt", zap.Error(err))
	}
}

func (h *Handler) send(text string) {
	if _, err := fmt.Fprintln(h.out, text); err != nil {
		h.logger.Error("failed to write output", zap.Error(err))
	}
}

func (h *Handler) sendf(format string, args ...any) {
	h.send(fmt.Sprintf(format, args...))
}

package bot

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/omarshaarawi/squadbot/internal/service"
	"github.com/omarshaarawi/squadbot/internal/stats"
)

const helpText = `Available commands:
/roster [query] - List the squad, optionally filtered by name or role
/add name=...; role=...; avg=...; sr=... - Add a player
/edit <player>; key=value; ... - Edit a player
/delete <player> - Remove a player (asks first)
/confirm - Confirm a pending removal
/cancel - Cancel a pending removal
/view <player> - Open a player's profile
/player [player] - Show the current player profile
/analytics - Team analytics
/top - Top performers
/trends - Runs and wickets over the last 10 matches
/table [sortKey] [query] - Sortable stats table`

// chatState is what a chat remembers between commands.
type chatState struct {
	pendingDelete string
	sort          stats.SortState
}

type Handler struct {
	squadService *service.SquadService

	mu    sync.Mutex
	chats map[int64]*chatState
}

func NewHandler(squadService *service.SquadService) *Handler {
	return &Handler{
		squadService: squadService,
		chats:        make(map[int64]*chatState),
	}
}

func (h *Handler) HandleCommand(update tgbotapi.Update) tgbotapi.MessageConfig {
	chatID := update.Message.Chat.ID
	msg := tgbotapi.NewMessage(chatID, "")
	command := strings.ToLower(update.Message.Command())
	args := strings.TrimSpace(update.Message.CommandArguments())
	msg.ParseMode = "Markdown"

	switch command {
	case "start":
		msg.Text = "Welcome to SquadBot! Use /help to see available commands."
	case "help":
		msg.Text = service.Escape(helpText)
	case "roster":
		msg.Text = h.squadService.RosterReport(args)
	case "add":
		h.handleAdd(&msg, args)
	case "edit":
		h.handleEdit(&msg, args)
	case "delete":
		h.handleDelete(&msg, chatID, args)
	case "confirm":
		h.handleConfirm(&msg, chatID)
	case "cancel":
		h.handleCancel(&msg, chatID)
	case "view":
		h.handleView(&msg, args)
	case "player":
		if args == "" {
			msg.Text = h.squadService.PlayerReport(h.squadService.CurrentRoute())
		} else {
			h.handleView(&msg, args)
		}
	case "analytics":
		msg.Text = h.squadService.TeamReport()
	case "top":
		msg.Text = h.squadService.TopPerformersReport()
	case "trends":
		msg.Text = h.squadService.TrendsReport()
	case "table":
		h.handleTable(&msg, chatID, args)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) handleAdd(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide player fields. Usage: /add name=Ravi Kumar; role=bowler; wickets=12"
		return
	}
	fields, err := service.ParseFields(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error reading fields: %s", service.Escape(err.Error()))
		return
	}
	player, toast, err := h.squadService.AddPlayer(fields)
	if err != nil {
		msg.Text = fmt.Sprintf("Error adding player: %s", service.Escape(err.Error()))
		return
	}
	msg.Text = fmt.Sprintf("✅ %s\n*%s* (%s)", toast, service.Escape(player.Name), player.Role)
}

func (h *Handler) handleEdit(msg *tgbotapi.MessageConfig, args string) {
	ref, rest, ok := strings.Cut(args, ";")
	if !ok || strings.TrimSpace(ref) == "" {
		msg.Text = "Usage: /edit <player>; key=value; ..."
		return
	}
	player, err := h.squadService.Find(ref)
	if err != nil {
		msg.Text = fmt.Sprintf("Error finding player: %s", service.Escape(err.Error()))
		return
	}
	fields, err := service.ParseFields(rest)
	if err != nil {
		msg.Text = fmt.Sprintf("Error reading fields: %s", service.Escape(err.Error()))
		return
	}
	updated, toast, err := h.squadService.UpdatePlayer(player.ID, fields)
	if err != nil {
		msg.Text = fmt.Sprintf("Error updating player: %s", service.Escape(err.Error()))
		return
	}
	msg.Text = fmt.Sprintf("✅ %s\n*%s* (%s)", toast, service.Escape(updated.Name), updated.Role)
}

func (h *Handler) handleDelete(msg *tgbotapi.MessageConfig, chatID int64, args string) {
	if args == "" {
		msg.Text = "Please provide a player name. Usage: /delete <player>"
		return
	}
	player, err := h.squadService.Find(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error finding player: %s", service.Escape(err.Error()))
		return
	}

	h.mu.Lock()
	h.state(chatID).pendingDelete = player.ID
	h.mu.Unlock()

	msg.Text = fmt.Sprintf("Remove *%s* from the squad? Reply /confirm or /cancel.", service.Escape(player.Name))
}

func (h *Handler) handleConfirm(msg *tgbotapi.MessageConfig, chatID int64) {
	h.mu.Lock()
	st := h.state(chatID)
	id := st.pendingDelete
	st.pendingDelete = ""
	h.mu.Unlock()

	if id == "" {
		msg.Text = "Nothing to confirm."
		return
	}
	toast, err := h.squadService.DeletePlayer(id)
	if errors.Is(err, service.ErrPlayerNotFound) {
		msg.Text = "That player is no longer in the squad."
		return
	}
	if err != nil {
		msg.Text = fmt.Sprintf("Error removing player: %s", service.Escape(err.Error()))
		return
	}
	msg.Text = "🗑 " + toast
}

func (h *Handler) handleCancel(msg *tgbotapi.MessageConfig, chatID int64) {
	h.mu.Lock()
	st := h.state(chatID)
	pending := st.pendingDelete != ""
	st.pendingDelete = ""
	h.mu.Unlock()

	if !pending {
		msg.Text = "Nothing to cancel."
		return
	}
	msg.Text = "Removal cancelled."
}

func (h *Handler) handleView(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a player name. Usage: /view <player>"
		return
	}
	player, err := h.squadService.Find(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error finding player: %s", service.Escape(err.Error()))
		return
	}
	route, err := h.squadService.ViewPlayer(player.ID)
	if err != nil {
		msg.Text = fmt.Sprintf("Error opening player: %s", service.Escape(err.Error()))
		return
	}
	msg.Text = h.squadService.PlayerReport(route)
}

// handleTable treats a leading sort key as a column click: the same key twice
// flips the direction. Anything after it is the search query.
func (h *Handler) handleTable(msg *tgbotapi.MessageConfig, chatID int64, args string) {
	h.mu.Lock()
	st := h.state(chatID)
	query := args
	if first, rest, _ := strings.Cut(args, " "); first != "" {
		if key, err := stats.ParseSortKey(first); err == nil {
			st.sort = st.sort.Toggle(key)
			query = strings.TrimSpace(rest)
		}
	}
	sort := st.sort
	h.mu.Unlock()

	msg.Text = h.squadService.TableReport(query, sort)
}

// state must be called with h.mu held.
func (h *Handler) state(chatID int64) *chatState {
	st, ok := h.chats[chatID]
	if !ok {
		st = &chatState{sort: stats.DefaultSort()}
		h.chats[chatID] = st
	}
	return st
}

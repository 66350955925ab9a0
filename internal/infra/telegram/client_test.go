package telegram

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"
)

// fakeBotAPI answers the two Bot API methods the adapter needs.
func fakeBotAPI(t *testing.T, sent *[]map[string]any) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			_, _ = io.WriteString(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"bot","username":"status_bot"}}`)
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			var params map[string]any
			if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&params)) {
				return
			}
			*sent = append(*sent, params)
			_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":-100,"type":"channel"},"text":"ok"}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"ok":false,"error_code":404,"description":"Not Found"}`)
		}
	}))
}

func TestSendMessage(t *testing.T) {
	var sent []map[string]any
	srv := fakeBotAPI(t, &sent)
	defer srv.Close()

	bot, err := telebot.NewBot(telebot.Settings{Token: "token", URL: srv.URL, Client: newHTTPClient(0)})
	require.NoError(t, err)

	adapter := NewTelebotAdapter(bot)
	require.NoError(t, adapter.SendMessage(-100, "Status changed", nil))

	require.Len(t, sent, 1)
	assert.Equal(t, "-100", sent[0]["chat_id"])
	assert.Equal(t, "Status changed", sent[0]["text"])
}

func TestSendMessageAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.HasSuffix(r.URL.Path, "/getMe") {
			_, _ = io.WriteString(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"bot"}}`)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`)
	}))
	defer srv.Close()

	bot, err := telebot.NewBot(telebot.Settings{Token: "token", URL: srv.URL})
	require.NoError(t, err)

	err = NewTelebotAdapter(bot).SendMessage(42, "hello", nil)
	assert.Error(t, err)
}

func TestNewBotNeedsNoNetwork(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, `{"ok":false,"error_code":502,"description":"Bad Gateway"}`)
	}))
	defer srv.Close()

	bot, err := NewBot("123:abc", time.Second)
	require.NoError(t, err)
	require.NotNil(t, bot)
	assert.Zero(t, calls)

	// An unreachable Bot API shows up as a send error, not a construction error.
	bot.URL = srv.URL
	err = NewTelebotAdapter(bot).SendMessage(42, "hello", nil)
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestNewBotSendsThroughAPI(t *testing.T) {
	var sent []map[string]any
	srv := fakeBotAPI(t, &sent)
	defer srv.Close()

	bot, err := NewBot("token", time.Second)
	require.NoError(t, err)
	bot.URL = srv.URL

	require.NoError(t, NewTelebotAdapter(bot).SendMessage(-100, "Bot started working", nil))
	require.Len(t, sent, 1)
	assert.Equal(t, "Bot started working", sent[0]["text"])
}

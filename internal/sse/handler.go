package sse

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/ufoaiorg/ufoai-sub020/internal/logger"
)

// Handler streams hub messages until the client goes away or the hub stops.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, ErrMsgStreamingUnsupported, http.StatusInternalServerError)
			return
		}

		filter, err := ParseFilter(r.URL.Query().Get(QueryParamTypes))
		if err != nil {
			log.Warn(LogMsgBadFilter, "error", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		s, ok := hub.open(filter)
		if !ok {
			http.Error(w, ErrMsgHubStopped, http.StatusServiceUnavailable)
			return
		}
		log.Info(LogMsgStreamOpened, "types", filter)
		defer func() {
			hub.close(s)
			log.Info(LogMsgStreamClosed, "dropped", s.dropped.Load())
		}()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		hello := map[string]any{"types": filter, "last_seq": hub.seq.Load()}
		if err := writeFrame(w, EventTypeConnected, 0, hello); err != nil {
			log.Warn(LogMsgWriteError, "error", err)
			return
		}
		flusher.Flush()

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-r.Context().Done():
				return

			case msg, ok := <-s.out:
				if !ok {
					return
				}
				if err := writeFrame(w, string(msg.Type), msg.Seq, msg); err != nil {
					log.Warn(LogMsgWriteError, "error", err, "seq", msg.Seq)
					return
				}
				flusher.Flush()

			case <-ticker.C:
				if _, err := io.WriteString(w, keepaliveFrame); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}

// writeFrame writes one "event:"/"data:" frame; a zero seq omits the id line.
func writeFrame(w io.Writer, name string, seq uint64, data any) error {
	body, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if seq > 0 {
		if _, err := io.WriteString(w, "id: "+strconv.FormatUint(seq, 10)+"\n"); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, body)
	return err
}

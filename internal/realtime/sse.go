package realtime

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// GET /api/stream
// Server-Sent Events: personel paneli tek bağlantıdan tüm sipariş ve
// bildirim olaylarını dinler. gorilla/websocket net/http upgrade'i
// istediği için fasthttp üstünde SSE kullanıyoruz.
func StreamHandler(hub *Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Content-Type", "text/event-stream")
		c.Set("Cache-Control", "no-cache")
		c.Set("Connection", "keep-alive")
		c.Set("X-Accel-Buffering", "no")

		c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
			ch, cancel := hub.Subscribe()
			defer cancel()

			// Bağlantının canlı olduğunu belli eden periyodik yorum satırı;
			// aynı zamanda kopan istemciyi fark etmemizi sağlar.
			keepalive := time.NewTicker(15 * time.Second)
			defer keepalive.Stop()

			for {
				select {
				case ev, ok := <-ch:
					if !ok {
						return
					}
					data, err := json.Marshal(ev)
					if err != nil {
						continue
					}
					fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Topic, data)
					if err := w.Flush(); err != nil {
						return
					}
				case <-keepalive.C:
					fmt.Fprint(w, ": keepalive\n\n")
					if err := w.Flush(); err != nil {
						return
					}
				}
			}
		}))

		return nil
	}
}

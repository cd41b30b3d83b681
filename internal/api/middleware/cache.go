package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
)

// cachedResponse сохраненный ответ для повторной отдачи
type cachedResponse struct {
	status  int
	headers http.Header
	body    []byte
}

// bodyCacheWriter дублирует тело ответа в буфер для кеширования
type bodyCacheWriter struct {
	http.ResponseWriter
	body   *bytes.Buffer
	status int
}

func (w *bodyCacheWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *bodyCacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Cache кеширует успешные GET ответы в памяти
// Ключ - полный URI запроса, включая query параметры
func Cache(store *cache.Cache, duration time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := r.RequestURI
			if resp, found := store.Get(key); found {
				cached := resp.(cachedResponse)
				for k, v := range cached.headers {
					w.Header()[k] = v
				}
				w.WriteHeader(cached.status)
				_, _ = w.Write(cached.body)
				return
			}

			writer := &bodyCacheWriter{
				ResponseWriter: w,
				body:           bytes.NewBuffer(nil),
				status:         http.StatusOK,
			}

			next.ServeHTTP(writer, r)

			// Кешируем только успешные ответы
			if writer.status >= 200 && writer.status < 300 {
				store.Set(key, cachedResponse{
					status:  writer.status,
					headers: writer.Header().Clone(),
					body:    writer.body.Bytes(),
				}, duration)
			}
		})
	}
}

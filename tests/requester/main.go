package main

import (
	"bytes"
	"crypto/rand"
	"fmt"
	mrand "math/rand"
	"net/http"
	"os"
	"sync"
	"time"
)

// Нагрузка на корзину и чтение заказов. Пользователь и заказ должны существовать.
func main() {
	baseURL := envOr("BASE_URL", "http://localhost:8080")
	userID := envOr("USER_ID", "4f6c8a0e-1b2d-4c3e-9f70-8a1b2c3d4e5f")
	orderID := os.Getenv("ORDER_ID")

	for {
		var wg sync.WaitGroup
		for range mrand.Intn(10) {
			wg.Go(func() {
				switch mrand.Intn(3) {
				case 0:
					doRequest(http.MethodGet, baseURL+"/users/"+userID+"/cart", nil)
				case 1:
					body := fmt.Sprintf(`{"items":[{"product_id":"SKU-%d","quantity":1}]}`, mrand.Intn(5))
					doRequest(http.MethodPost, baseURL+"/users/"+userID+"/cart/items", []byte(body))
				default:
					id := orderID
					if id == "" || mrand.Intn(5) == 0 {
						id = randomUUID()
					}
					doRequest(http.MethodGet, baseURL+"/orders/"+id, nil)
				}
			})
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func randomUUID() string {
	b := make([]byte, 16)
	rand.Read(b)
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
}

func doRequest(method, url string, body []byte) {
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println(method, url, "->", resp.Status)
	resp.Body.Close()
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

// PaymentResult формат сообщения платёжного шлюза
type PaymentResult struct {
	OrderID       string `json:"order_id"`
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
}

var statuses = []string{"PAID", "PAID", "PAID", "FAILED", "REFUNDED"}

func randomResult(orderIDs []string) PaymentResult {
	return PaymentResult{
		OrderID:       orderIDs[rand.Intn(len(orderIDs))],
		Status:        statuses[rand.Intn(len(statuses))],
		TransactionID: fmt.Sprintf("TXN_%d", time.Now().UnixMilli()),
	}
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "kafka brokers, comma separated")
	topic := flag.String("topic", "payments", "payment results topic")
	orders := flag.String("orders", "", "order IDs, comma separated")
	interval := flag.Duration("interval", 2*time.Second, "delay between messages")
	flag.Parse()

	if *orders == "" {
		log.Fatal("at least one order ID is required")
	}
	orderIDs := strings.Split(*orders, ",")

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:                  *topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			res := randomResult(orderIDs)
			data, _ := json.Marshal(res)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(res.OrderID), Value: data}); err != nil {
				log.Println("failed to write payment result:", err)
				continue
			}
			log.Println("payment result sent", res.OrderID, res.Status)
		case <-ctx.Done():
			return
		}
	}
}

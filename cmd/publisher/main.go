package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	stan "github.com/nats-io/stan.go"
)

// Publishes one order-created event: either a synthetic sample order
// (-sample) or a JSON document read from stdin.
func main() {
	sample := flag.Bool("sample", false, "publish a generated sample order instead of reading stdin")
	total := flag.Float64("total", 1499.99, "total price for the sample order")
	flag.Parse()

	clusterID := getenv("STAN_CLUSTER_ID", "shop-cluster")
	clientID := getenv("STAN_PUB_ID", "order-publisher")
	natsURL := getenv("NATS_URL", "nats://localhost:4222")
	subject := getenv("STAN_SUBJECT", "orders.created")

	sc, err := stan.Connect(clusterID, clientID, stan.NatsURL(natsURL))
	if err != nil {
		log.Fatalf("stan connect: %v", err)
	}
	defer sc.Close()

	var payload map[string]any
	if *sample {
		payload = map[string]any{
			"order_uid":   uuid.NewString(),
			"total_price": *total,
			"shipping": map[string]any{
				"name": "Test Customer",
				"city": "Karachi",
			},
			"items":        []any{},
			"date_created": time.Now().UTC().Format(time.RFC3339),
		}
	} else {
		if err := json.NewDecoder(os.Stdin).Decode(&payload); err != nil {
			log.Fatalf("read json from stdin: %v", err)
		}
	}

	b, err := json.Marshal(payload)
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	if err := sc.Publish(subject, b); err != nil {
		log.Fatalf("publish: %v", err)
	}
	log.Printf("published %d bytes to %s", len(b), subject)
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

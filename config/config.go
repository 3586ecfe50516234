package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Restaurant RestaurantConfig
	Wallet     WalletConfig
	Delivery   DeliveryConfig
	Orders     OrdersConfig
	Card       RailConfig
	Mobile     RailConfig
}

type RestaurantConfig struct {
	Name string
}

type WalletConfig struct {
	StartingBalance decimal.Decimal
}

type DeliveryConfig struct {
	Fee      decimal.Decimal
	FreeOver decimal.Decimal
}

type OrdersConfig struct {
	SeqStart int64
}

// RailConfig tunes one simulated authorization rail.
type RailConfig struct {
	SuccessRate float64
	Delay       time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	starting, err := getDecimal("WALLET_STARTING_BALANCE", "500")
	if err != nil {
		return nil, err
	}
	fee, err := getDecimal("DELIVERY_FEE", "50")
	if err != nil {
		return nil, err
	}
	freeOver, err := getDecimal("FREE_DELIVERY_OVER", "500")
	if err != nil {
		return nil, err
	}
	seqStart, err := getInt64("ORDER_SEQ_START", "1000")
	if err != nil {
		return nil, err
	}
	cardRate, err := getFloat("CARD_SUCCESS_RATE", "0.95")
	if err != nil {
		return nil, err
	}
	cardDelay, err := getDuration("CARD_DELAY", "2s")
	if err != nil {
		return nil, err
	}
	mobileRate, err := getFloat("MOBILE_SUCCESS_RATE", "0.90")
	if err != nil {
		return nil, err
	}
	mobileDelay, err := getDuration("MOBILE_DELAY", "1.5s")
	if err != nil {
		return nil, err
	}

	return &Config{
		Restaurant: RestaurantConfig{
			Name: getEnv("RESTAURANT_NAME", "Tasty Bites"),
		},
		Wallet: WalletConfig{
			StartingBalance: starting,
		},
		Delivery: DeliveryConfig{
			Fee:      fee,
			FreeOver: freeOver,
		},
		Orders: OrdersConfig{
			SeqStart: seqStart,
		},
		Card: RailConfig{
			SuccessRate: cardRate,
			Delay:       cardDelay,
		},
		Mobile: RailConfig{
			SuccessRate: mobileRate,
			Delay:       mobileDelay,
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDecimal(key, def string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(getEnv(key, def))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getInt64(key, def string) (int64, error) {
	v, err := strconv.ParseInt(getEnv(key, def), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getFloat(key, def string) (float64, error) {
	v, err := strconv.ParseFloat(getEnv(key, def), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getDuration(key, def string) (time.Duration, error) {
	v, err := time.ParseDuration(getEnv(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

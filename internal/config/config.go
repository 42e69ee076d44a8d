package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	GinMode        string
	AllowedOrigins string

	MongoURI      string
	MongoDatabase string

	RabbitMQURI      string
	RabbitMQExchange string

	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string

	JWTSecret string

	SuiNetwork     string
	SuiRPCEndpoint string
	// Hex-encoded 32-byte ed25519 seed for the service reward wallet.
	SuiPrivateKeySeed string
	GasBudget         uint64

	NFTPackageID    string
	NFTModule       string
	NFTMintFunction string

	ServiceName    string
	ServiceVersion string
}

var AppConfig *Config

// Default fullnode endpoints per network, overridable via SUI_RPC_URL.
var networkEndpoints = map[string]string{
	"devnet":  "https://fullnode.devnet.sui.io:443",
	"testnet": "https://fullnode.testnet.sui.io:443",
	"mainnet": "https://fullnode.mainnet.sui.io:443",
}

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	network := getEnvOrDefault("SUI_NETWORK", "testnet")
	endpoint := os.Getenv("SUI_RPC_URL")
	if endpoint == "" {
		if ep, ok := networkEndpoints[network]; ok {
			endpoint = ep
		} else {
			endpoint = networkEndpoints["testnet"]
		}
	}

	AppConfig = &Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		GinMode:        getEnvOrDefault("GIN_MODE", "debug"),
		AllowedOrigins: getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:3000"),

		MongoURI:      getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGO_DATABASE", "suiverse"),

		RabbitMQURI:      getEnvOrDefault("RABBITMQ_URI", ""),
		RabbitMQExchange: getEnvOrDefault("RABBITMQ_EXCHANGE", "suiverse.events"),

		LLMBaseURL: getEnvOrDefault("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMAPIKey:  getEnvOrDefault("LLM_API_KEY", ""),
		LLMModel:   getEnvOrDefault("LLM_MODEL", "gpt-4o-mini"),

		JWTSecret: getEnvOrDefault("JWT_SECRET", "suiverse-dev-secret"),

		SuiNetwork:        network,
		SuiRPCEndpoint:    endpoint,
		SuiPrivateKeySeed: getEnvOrDefault("SUI_PRIVATE_KEY_SEED", ""),
		GasBudget:         getEnvUint64OrDefault("SUI_GAS_BUDGET", 10_000_000),

		NFTPackageID:    getEnvOrDefault("NFT_PACKAGE_ID", "0x0"),
		NFTModule:       getEnvOrDefault("NFT_MODULE", "suiverse_nft"),
		NFTMintFunction: getEnvOrDefault("NFT_MINT_FUNCTION", "mint"),

		ServiceName:    getEnvOrDefault("SERVICE_NAME", "suiverse-backend"),
		ServiceVersion: getEnvOrDefault("SERVICE_VERSION", "1.0.0"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvUint64OrDefault(key string, defaultValue uint64) uint64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d local record store DSN
//	-r remote record store relay address
//	-remote use the relay as the primary record store
//	-hash-key relay request hash key
//	-owner vault owner DID
//	-credential-source DID whose store holds credentials
//	-transfer-concurrency concurrent sends per bulk transfer
//	-request-timeout inbound request timeout (e.g., "30s")
//	-adapter-timeout outbound relay request timeout (e.g., "10s")
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("vault", flag.ContinueOnError)

	var serverAddress NetAddress
	var dsn, relayAddress, hashKey, ownerDID, credentialSource, jsonConfigPath string
	var remote bool
	var concurrency int
	var requestTimeout, adapterTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&dsn, "d", "", "Local record store DSN")
	fs.StringVar(&relayAddress, "r", "", "Remote record store relay address")
	fs.BoolVar(&remote, "remote", false, "Use the relay as the primary record store")
	fs.StringVar(&hashKey, "hash-key", "", "Relay request hash key")
	fs.StringVar(&ownerDID, "owner", "", "Vault owner DID")
	fs.StringVar(&credentialSource, "credential-source", "", "DID whose store holds credentials")
	fs.IntVar(&concurrency, "transfer-concurrency", 0, "Concurrent sends per bulk transfer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Relay request timeout (e.g., 10s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{DB: DB{DSN: dsn}},
		Adapter: Adapter{
			HTTPAddress:    relayAddress,
			RequestTimeout: adapterTimeout,
			HashKey:        hashKey,
			Remote:         remote,
		},
		Vault: Vault{
			OwnerDID:         ownerDID,
			CredentialSource: credentialSource,
		},
		Workers:      Workers{TransferConcurrency: concurrency},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The port must be positive and the host must be
// "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, ok := strings.Cut(s, ":")
	if !ok || strings.Contains(portStr, ":") {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Package storageadapter backs the ports.PermanentStorage capability with
// EigenDA blob dispersal. The daily inscription is encoded as a JSON blob,
// padded for bn254 field-element compatibility, and dispersed; the request
// id is the opaque record id. When no EigenDA key is configured or
// dispersal fails, the inscription falls back to the local badger record
// store so nothing is lost and the survival loop can retry the next day.
package storageadapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/Layr-Labs/eigenda/api/clients"
	"github.com/Layr-Labs/eigenda/core/auth"
	"github.com/Layr-Labs/eigenda/encoding/utils/codec"

	"github.com/axobase/egde/ports"
	"github.com/axobase/egde/ports/messagingadapter"
	"github.com/axobase/egde/storage"
)

const (
	MaxRetries = 3

	// NATS subject for inscription notifications
	SubjectInscriptionStored = "inscription.stored"

	// EigenDA configuration
	EigenDAHost           = "disperser-holesky.eigenda.xyz"
	EigenDAPort           = "443"
	EigenDARequestTimeout = 30 * time.Second
	EigenDAPollInterval   = 5 * time.Second
	EigenDAMaxWaitTime    = 30 * time.Minute
)

// InscriptionService implements ports.PermanentStorage over EigenDA with a
// local offchain fallback.
type InscriptionService struct {
	populationID string
	agentID      string
	client       clients.DisperserClient
	messenger    *messagingadapter.Messenger
	store        storage.Storage
}

// NewInscriptionService builds the adapter. The EigenDA client is only
// constructed when EIGENDA_AUTH_PK is set; without it every inscription
// takes the offchain path. messenger and store may each be nil.
func NewInscriptionService(populationID, agentID string, messenger *messagingadapter.Messenger, store storage.Storage) (*InscriptionService, error) {
	svc := &InscriptionService{
		populationID: populationID,
		agentID:      agentID,
		messenger:    messenger,
		store:        store,
	}

	eigendaAuthKey, ok := os.LookupEnv("EIGENDA_AUTH_PK")
	if !ok {
		log.Println("Warning: EIGENDA_AUTH_PK not set, inscriptions will be stored offchain only")
		return svc, nil
	}

	// Validate key length and remove optional '0x' prefix
	eigendaAuthKey = strings.TrimSpace(eigendaAuthKey)
	eigendaAuthKey = strings.TrimPrefix(eigendaAuthKey, "0x")
	if len(eigendaAuthKey) < 64 {
		eigendaAuthKey = strings.Repeat("0", 64-len(eigendaAuthKey)) + eigendaAuthKey
	} else if len(eigendaAuthKey) > 64 {
		return nil, fmt.Errorf("invalid EIGENDA_AUTH_PK length: got %d, expected 64 hex characters", len(eigendaAuthKey))
	}
	if _, err := hex.DecodeString(eigendaAuthKey); err != nil {
		return nil, fmt.Errorf("invalid EIGENDA_AUTH_PK: hex decoding failed: %w", err)
	}

	signer := auth.NewLocalBlobRequestSigner("0x" + eigendaAuthKey)
	config := &clients.Config{
		Hostname:          EigenDAHost,
		Port:              EigenDAPort,
		Timeout:           EigenDARequestTimeout,
		UseSecureGrpcFlag: true,
	}
	client, err := clients.NewDisperserClient(config, signer)
	if err != nil {
		return nil, fmt.Errorf("failed to create disperser client: %w", err)
	}
	svc.client = client
	return svc, nil
}

// inscriptionBlob is the JSON shape dispersed to EigenDA.
type inscriptionBlob struct {
	AgentID      string `json:"agentId"`
	GenomeHash   string `json:"genomeHash"`
	Thoughts     string `json:"thoughts"`
	Transactions string `json:"transactions"`
	Summary      string `json:"summary"`
	Timestamp    int64  `json:"timestamp"`
}

// DailyInscribe implements ports.PermanentStorage.
func (s *InscriptionService) DailyInscribe(ctx context.Context, genomeHash, thoughts, transactions, summary string) (string, error) {
	blob := inscriptionBlob{
		AgentID:      s.agentID,
		GenomeHash:   genomeHash,
		Thoughts:     thoughts,
		Transactions: transactions,
		Summary:      summary,
		Timestamp:    time.Now().UnixMilli(),
	}

	recordID, offchain, err := s.storeBlob(ctx, blob)
	if err != nil {
		return "", ports.NewPortFailure("permanent-storage", err)
	}

	if s.store != nil {
		ins := storage.Inscription{
			RecordID:     recordID,
			GenomeHash:   genomeHash,
			Thoughts:     thoughts,
			Transactions: transactions,
			Summary:      summary,
			Timestamp:    blob.Timestamp,
			Offchain:     offchain,
		}
		if err := s.store.SaveInscription(s.populationID, ins); err != nil {
			log.Printf("Failed to index inscription %s locally: %v", recordID, err)
		}
	}

	if s.messenger != nil {
		event := map[string]any{"recordId": recordID, "agentId": s.agentID, "offchain": offchain}
		if err := s.messenger.Broadcast(ctx, event); err != nil {
			log.Printf("Failed to announce inscription %s: %v", recordID, err)
		}
	}

	return recordID, nil
}

// storeBlob tries EigenDA first and falls back to the offchain store. It
// returns the record id and whether the offchain path was taken.
func (s *InscriptionService) storeBlob(ctx context.Context, blob inscriptionBlob) (string, bool, error) {
	jsonData, err := json.Marshal(blob)
	if err != nil {
		return "", false, fmt.Errorf("failed to marshal inscription: %w", err)
	}

	if s.client != nil {
		recordID, err := s.disperse(ctx, jsonData)
		if err == nil {
			return recordID, false, nil
		}
		log.Printf("EigenDA dispersal failed, falling back to offchain storage: %v", err)
	}

	if s.store == nil {
		return "", false, fmt.Errorf("no EigenDA client and no offchain store configured")
	}
	return offchainRecordID(blob), true, nil
}

// disperse pushes the blob to EigenDA with retries and waits for it to be
// confirmed or finalized.
func (s *InscriptionService) disperse(ctx context.Context, jsonData []byte) (string, error) {
	// Encode data to be compatible with bn254 field element constraints
	encodedData := codec.ConvertByPaddingEmptyByte(jsonData)

	var requestID string
	err := retry(MaxRetries, 2*time.Second, func() error {
		reqCtx, cancel := context.WithTimeout(ctx, EigenDARequestTimeout)
		defer cancel()

		// Default quorums
		quorums := []uint8{}
		_, reqID, err := s.client.DisperseBlob(reqCtx, encodedData, quorums)
		if err != nil {
			return fmt.Errorf("error dispersing blob: %w", err)
		}
		requestID = string(reqID)
		return nil
	})
	if err != nil {
		return "", err
	}

	if _, err := s.waitForBlobStatus(ctx, requestID); err != nil {
		return requestID, fmt.Errorf("blob dispersed but status tracking failed: %w", err)
	}
	return requestID, nil
}

// waitForBlobStatus polls the blob status until it's confirmed, finalized,
// or failed.
func (s *InscriptionService) waitForBlobStatus(ctx context.Context, requestID string) (string, error) {
	overallCtx, cancel := context.WithTimeout(ctx, EigenDAMaxWaitTime)
	defer cancel()

	ticker := time.NewTicker(EigenDAPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			statusCtx, statusCancel := context.WithTimeout(overallCtx, EigenDARequestTimeout)
			statusReply, err := s.client.GetBlobStatus(statusCtx, []byte(requestID))
			statusCancel()
			if err != nil {
				return "ERROR", fmt.Errorf("error getting blob status: %w", err)
			}

			status := statusReply.Status.String()
			switch status {
			case "FINALIZED", "CONFIRMED":
				return status, nil
			case "FAILED":
				return status, fmt.Errorf("blob dispersal failed with status: %v", status)
			}
			log.Printf("Current blob status for %s: %s", requestID[:12], status)

		case <-overallCtx.Done():
			return "TIMEOUT", fmt.Errorf("timed out waiting for blob to finalize")
		}
	}
}

// offchainRecordID derives a stable record id for an inscription that
// never reached EigenDA.
func offchainRecordID(blob inscriptionBlob) string {
	return fmt.Sprintf("offchain-%s-%d", blob.AgentID, blob.Timestamp)
}

// retry runs f up to attempts times with a fixed sleep between failures.
func retry(attempts int, sleep time.Duration, f func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = f(); err == nil {
			return nil
		}
		log.Printf("Attempt %d failed: %v", i+1, err)
		time.Sleep(sleep)
	}
	return err
}

var _ ports.PermanentStorage = (*InscriptionService)(nil)

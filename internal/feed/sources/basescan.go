package sources

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vishalsachdev/openclaw-dashboard/internal/feed"
)

const basescanAPI = "https://api.basescan.org/api"

const weiPerEther = 1e18

// Basescan fetches holder counts and transaction lists from the Basescan
// explorer API. An API key is optional: without one, holder counts degrade
// to zero without touching the network.
type Basescan struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewBasescan(apiKey string) *Basescan {
	return &Basescan{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: basescanAPI,
		apiKey:  apiKey,
	}
}

type basescanEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

type basescanTx struct {
	Hash            string `json:"hash"`
	TimeStamp       string `json:"timeStamp"`
	From            string `json:"from"`
	To              string `json:"to"`
	Value           string `json:"value"`
	GasUsed         string `json:"gasUsed"`
	IsError         string `json:"isError"`
	FunctionName    string `json:"functionName"`
	ContractAddress string `json:"contractAddress"`
}

// HolderCount fetches the token holder count. When no API key is
// configured it returns 0 immediately: a deliberate degrade, not a
// transport failure.
func (b *Basescan) HolderCount(address string) (int, error) {
	if b.apiKey == "" {
		return 0, nil
	}

	q := url.Values{}
	q.Set("module", "token")
	q.Set("action", "tokenholdercount")
	q.Set("contractaddress", address)
	q.Set("apikey", b.apiKey)

	env, err := b.call(q)
	if err != nil {
		return 0, fmt.Errorf("basescan holder count: %w", err)
	}

	var result string
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return 0, fmt.Errorf("decode basescan holder count: %w", err)
	}
	n, err := strconv.Atoi(result)
	if err != nil {
		return 0, fmt.Errorf("parse basescan holder count: %w", err)
	}
	return n, nil
}

// Transactions fetches up to limit transactions for an address, newest
// first as returned by the explorer.
func (b *Basescan) Transactions(address string, limit int) ([]feed.Transaction, error) {
	raw, err := b.txlist(address, limit)
	if err != nil {
		return nil, err
	}

	txs := make([]feed.Transaction, 0, len(raw))
	for _, tx := range raw {
		txs = append(txs, feed.Transaction{
			Hash:      tx.Hash,
			Timestamp: time.Unix(intOrZero(tx.TimeStamp), 0).UTC(),
			From:      tx.From,
			To:        tx.To,
			Value:     floatOrZero(tx.Value) / weiPerEther,
			GasUsed:   intOrZero(tx.GasUsed),
			IsError:   tx.IsError == "1",
			Method:    methodName(tx.FunctionName),
		})
	}
	return txs, nil
}

// ContractCreations estimates token deployments from the last 1000
// transactions of a deployer contract. A transaction counts as a creation
// when its to-address is empty or a created contract address is present.
func (b *Basescan) ContractCreations(address string) (feed.ActivitySummary, error) {
	raw, err := b.txlist(address, 1000)
	if err != nil {
		return feed.ActivitySummary{}, err
	}

	creations := 0
	daily := make(map[string]int)
	for _, tx := range raw {
		if tx.To == "" || tx.ContractAddress != "" {
			creations++
		}
		day := time.Unix(intOrZero(tx.TimeStamp), 0).UTC().Format("2006-01-02")
		daily[day]++
	}

	return feed.ActivitySummary{
		TotalTxs:          len(raw),
		ContractCreations: creations,
		DailyActivity:     daily,
	}, nil
}

func (b *Basescan) txlist(address string, limit int) ([]basescanTx, error) {
	q := url.Values{}
	q.Set("module", "account")
	q.Set("action", "txlist")
	q.Set("address", address)
	q.Set("startblock", "0")
	q.Set("endblock", "99999999")
	q.Set("page", "1")
	q.Set("offset", strconv.Itoa(limit))
	q.Set("sort", "desc")
	q.Set("apikey", b.apiKey)

	env, err := b.call(q)
	if err != nil {
		return nil, fmt.Errorf("basescan txlist: %w", err)
	}

	var txs []basescanTx
	if err := json.Unmarshal(env.Result, &txs); err != nil {
		return nil, fmt.Errorf("decode basescan txlist: %w", err)
	}
	return txs, nil
}

func (b *Basescan) call(q url.Values) (*basescanEnvelope, error) {
	resp, err := b.client.Get(b.baseURL + "?" + q.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var env basescanEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if env.Status != "1" {
		return nil, fmt.Errorf("api status %q: %s", env.Status, env.Message)
	}
	return &env, nil
}

// methodName extracts the bare method from a decoded function signature,
// e.g. "deployToken(address owner)" -> "deployToken".
func methodName(functionName string) string {
	if functionName == "" {
		return "transfer"
	}
	if i := strings.Index(functionName, "("); i >= 0 {
		return functionName[:i]
	}
	return functionName
}

func intOrZero(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

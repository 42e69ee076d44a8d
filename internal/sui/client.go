// Package sui is a thin JSON-RPC client for a Sui fullnode, covering the
// two operations the platform needs: native-token transfers from the
// service wallet and Move-call construction against the deployed NFT
// package.
package sui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"
)

const suiCoinType = "0x2::sui::SUI"

type Client struct {
	httpClient *http.Client
	endpoint   string
	signer     *Signer
	gasBudget  uint64
	reqID      atomic.Int64
}

func NewClient(endpoint string, signer *Signer, gasBudget uint64) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		endpoint:   endpoint,
		signer:     signer,
		gasBudget:  gasBudget,
	}
}

// Signer returns the service wallet signer, or nil when the client was
// built without one.
func (c *Client) Signer() *Signer {
	return c.signer
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func (c *Client) call(ctx context.Context, method string, params []any, out any) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      c.reqID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("marshal rpc request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create rpc request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("rpc call %s: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read rpc response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("rpc %s: status %d: %s", method, resp.StatusCode, string(raw))
	}

	var envelope rpcResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("parse rpc response: %w", err)
	}
	if envelope.Error != nil {
		return fmt.Errorf("rpc %s: error %d: %s", method, envelope.Error.Code, envelope.Error.Message)
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return fmt.Errorf("parse %s result: %w", method, err)
		}
	}
	return nil
}

type coin struct {
	CoinObjectID string `json:"coinObjectId"`
	Balance      string `json:"balance"`
}

type coinPage struct {
	Data []coin `json:"data"`
}

// getCoins lists SUI coin objects owned by an address, used to fund
// transfers from the service wallet.
func (c *Client) getCoins(ctx context.Context, owner string) ([]coin, error) {
	var page coinPage
	if err := c.call(ctx, "suix_getCoins", []any{owner, suiCoinType, nil, nil}, &page); err != nil {
		return nil, err
	}
	return page.Data, nil
}

// selectCoins picks coin objects until their combined balance covers the
// amount plus gas budget.
func selectCoins(coins []coin, needed uint64) ([]string, error) {
	var ids []string
	var total uint64
	for _, co := range coins {
		bal, err := strconv.ParseUint(co.Balance, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, co.CoinObjectID)
		total += bal
		if total >= needed {
			return ids, nil
		}
	}
	return nil, fmt.Errorf("insufficient balance: have %d MIST, need %d", total, needed)
}

type txBytesResult struct {
	TxBytes string `json:"txBytes"`
}

type executionStatus struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

type txEffects struct {
	Status executionStatus `json:"status"`
}

type txBlockResponse struct {
	Digest  string    `json:"digest"`
	Effects txEffects `json:"effects"`
}

// TransferSui sends amountMist from the service wallet to the recipient and
// waits for local execution. Returns the transaction digest.
func (c *Client) TransferSui(ctx context.Context, recipient string, amountMist uint64) (string, error) {
	if c.signer == nil {
		return "", fmt.Errorf("service wallet not configured")
	}
	sender := c.signer.Address()

	coins, err := c.getCoins(ctx, sender)
	if err != nil {
		return "", fmt.Errorf("list coins: %w", err)
	}
	inputCoins, err := selectCoins(coins, amountMist+c.gasBudget)
	if err != nil {
		return "", err
	}

	var unsigned txBytesResult
	params := []any{
		sender,
		inputCoins,
		[]string{recipient},
		[]string{strconv.FormatUint(amountMist, 10)},
		strconv.FormatUint(c.gasBudget, 10),
	}
	if err := c.call(ctx, "unsafe_paySui", params, &unsigned); err != nil {
		return "", fmt.Errorf("build transfer: %w", err)
	}

	return c.signAndExecute(ctx, unsigned.TxBytes)
}

// BuildMoveCall constructs (without sending) a transaction invoking an
// entry function of a deployed package. Arguments are passed as scalars the
// node encodes per the function signature. Returns the base64 tx bytes.
func (c *Client) BuildMoveCall(ctx context.Context, packageID, module, function string, args []any) (string, error) {
	if c.signer == nil {
		return "", fmt.Errorf("service wallet not configured")
	}
	sender := c.signer.Address()

	var unsigned txBytesResult
	params := []any{
		sender,
		packageID,
		module,
		function,
		[]string{}, // no type arguments
		args,
		nil, // let the node pick a gas object
		strconv.FormatUint(c.gasBudget, 10),
	}
	if err := c.call(ctx, "unsafe_moveCall", params, &unsigned); err != nil {
		return "", fmt.Errorf("build move call: %w", err)
	}
	return unsigned.TxBytes, nil
}

// ExecuteTransaction signs previously built tx bytes with the service
// wallet and submits them.
func (c *Client) ExecuteTransaction(ctx context.Context, txBytesB64 string) (string, error) {
	return c.signAndExecute(ctx, txBytesB64)
}

func (c *Client) signAndExecute(ctx context.Context, txBytesB64 string) (string, error) {
	signature, err := c.signer.SignTransaction(txBytesB64)
	if err != nil {
		return "", err
	}

	var result txBlockResponse
	params := []any{
		txBytesB64,
		[]string{signature},
		map[string]bool{"showEffects": true},
		"WaitForLocalExecution",
	}
	if err := c.call(ctx, "sui_executeTransactionBlock", params, &result); err != nil {
		return "", fmt.Errorf("execute transaction: %w", err)
	}
	if result.Effects.Status.Status != "" && result.Effects.Status.Status != "success" {
		return result.Digest, fmt.Errorf("transaction failed on chain: %s", result.Effects.Status.Error)
	}
	return result.Digest, nil
}

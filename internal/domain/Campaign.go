package domain

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const campaignKey = "campaign"

// CampaignRequest é o corpo enviado para /generate_campaign
type CampaignRequest struct {
	Product  string `json:"product"`
	Audience string `json:"audience"`
}

// CampaignResponse carrega o conteúdo gerado pelo backend, sem formato definido.
// Campaign é a visão tipada da chave "campaign"; as demais chaves ficam em
// Extra e voltam intactas na serialização.
type CampaignResponse struct {
	Campaign *string                        `json:"-"`
	Extra    map[string]jsoniter.RawMessage `json:"-"`
}

func (c *CampaignResponse) UnmarshalJSON(data []byte) error {
	var fields map[string]jsoniter.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	c.Campaign = nil
	if raw, ok := fields[campaignKey]; ok {
		var campaign *string
		// "campaign" nulo ou que não é texto é mantido cru em Extra
		if err := json.Unmarshal(raw, &campaign); err == nil && campaign != nil {
			c.Campaign = campaign
			delete(fields, campaignKey)
		}
	}

	c.Extra = nil
	if len(fields) > 0 {
		c.Extra = fields
	}
	return nil
}

func (c CampaignResponse) MarshalJSON() ([]byte, error) {
	fields := make(map[string]jsoniter.RawMessage, len(c.Extra)+1)
	for k, v := range c.Extra {
		fields[k] = v
	}
	if c.Campaign != nil {
		raw, err := json.Marshal(*c.Campaign)
		if err != nil {
			return nil, err
		}
		fields[campaignKey] = raw
	}
	return json.Marshal(fields)
}

package linode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the endpoint of the legacy Linode action API.
const DefaultBaseURL = "https://api.linode.com/"

// RealClient implements Client against the legacy Linode action API.
//
// Every operation is a GET with api_key, api_action and action-specific
// parameters in the query string; responses carry ERRORARRAY, ACTION and
// DATA fields.
type RealClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewRealClient creates a new RealClient authenticated with apiKey.
func NewRealClient(apiKey string) *RealClient {
	return &RealClient{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type apiResponse struct {
	ErrorArray []apiResponseError `json:"ERRORARRAY"`
	Action     string             `json:"ACTION"`
	Data       json.RawMessage    `json:"DATA"`
}

type apiResponseError struct {
	Code    int    `json:"ERRORCODE"`
	Message string `json:"ERRORMESSAGE"`
}

// invoke performs a single action API call and returns the raw DATA payload.
func (c *RealClient) invoke(ctx context.Context, action string, params url.Values) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("api_key", c.apiKey)
	query.Set("api_action", action)
	for key, vals := range params {
		for _, v := range vals {
			query.Add(key, v)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", action, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", action, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", action, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned HTTP %d", action, resp.StatusCode)
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", action, err)
	}

	if len(parsed.ErrorArray) > 0 {
		apiErr := &APIError{
			Action: action,
			Code:   parsed.ErrorArray[0].Code,
		}
		for _, e := range parsed.ErrorArray {
			apiErr.Messages = append(apiErr.Messages, e.Message)
		}
		return nil, apiErr
	}

	return parsed.Data, nil
}

// idFromData extracts a single numeric identifier field from a DATA object.
func idFromData(action string, data json.RawMessage, field string) (int, error) {
	var obj map[string]json.Number
	if err := json.Unmarshal(data, &obj); err != nil {
		return 0, fmt.Errorf("failed to decode %s data: %w", action, err)
	}
	num, ok := obj[field]
	if !ok {
		return 0, fmt.Errorf("%s: %s: %w", action, field, ErrMissingField)
	}
	id, err := num.Int64()
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%s: %s: %w", action, field, ErrMissingField)
	}
	return int(id), nil
}

// CreateLinode creates a new Linode and returns its ID.
func (c *RealClient) CreateLinode(ctx context.Context, datacenterID, planID int) (int, error) {
	data, err := c.invoke(ctx, "linode.create", url.Values{
		"DatacenterID": {strconv.Itoa(datacenterID)},
		"PlanID":       {strconv.Itoa(planID)},
	})
	if err != nil {
		return 0, err
	}
	return idFromData("linode.create", data, "LinodeID")
}

// RenameLinode sets the display label of the Linode.
func (c *RealClient) RenameLinode(ctx context.Context, linodeID int, label string) error {
	_, err := c.invoke(ctx, "linode.update", url.Values{
		"LinodeID": {strconv.Itoa(linodeID)},
		"Label":    {label},
	})
	return err
}

// AddPrivateIP allocates a private address on the Linode.
func (c *RealClient) AddPrivateIP(ctx context.Context, linodeID int) error {
	_, err := c.invoke(ctx, "linode.ip.addprivate", url.Values{
		"LinodeID": {strconv.Itoa(linodeID)},
	})
	return err
}

// ListIPs returns all addresses assigned to the Linode.
func (c *RealClient) ListIPs(ctx context.Context, linodeID int) ([]IP, error) {
	data, err := c.invoke(ctx, "linode.ip.list", url.Values{
		"LinodeID": {strconv.Itoa(linodeID)},
	})
	if err != nil {
		return nil, err
	}

	var entries []struct {
		Address  string `json:"IPADDRESS"`
		IsPublic int    `json:"ISPUBLIC"`
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode linode.ip.list data: %w", err)
	}

	ips := make([]IP, 0, len(entries))
	for _, e := range entries {
		if e.Address == "" {
			continue
		}
		ips = append(ips, IP{Address: e.Address, IsPublic: e.IsPublic == 1})
	}
	return ips, nil
}

// TotalDiskMB returns the total disk capacity of the Linode in MB.
func (c *RealClient) TotalDiskMB(ctx context.Context, linodeID int) (int, error) {
	data, err := c.invoke(ctx, "linode.list", url.Values{
		"LinodeID": {strconv.Itoa(linodeID)},
	})
	if err != nil {
		return 0, err
	}

	var entries []struct {
		TotalHD int `json:"TOTALHD"`
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return 0, fmt.Errorf("failed to decode linode.list data: %w", err)
	}
	if len(entries) == 0 || entries[0].TotalHD == 0 {
		return 0, fmt.Errorf("linode.list: TOTALHD: %w", ErrMissingField)
	}
	return entries[0].TotalHD, nil
}

// CreateDiskFromDistribution creates a disk pre-installed with a distribution.
func (c *RealClient) CreateDiskFromDistribution(ctx context.Context, linodeID, distributionID int, label string, sizeMB int, rootPass string) (int, error) {
	data, err := c.invoke(ctx, "linode.disk.createfromdistribution", url.Values{
		"LinodeID":       {strconv.Itoa(linodeID)},
		"DistributionID": {strconv.Itoa(distributionID)},
		"Label":          {label},
		"Size":           {strconv.Itoa(sizeMB)},
		"rootPass":       {rootPass},
	})
	if err != nil {
		return 0, err
	}
	return idFromData("linode.disk.createfromdistribution", data, "DiskID")
}

// CreateDisk creates an empty disk of the given filesystem type.
func (c *RealClient) CreateDisk(ctx context.Context, linodeID int, label, fsType string, sizeMB int) (int, error) {
	data, err := c.invoke(ctx, "linode.disk.create", url.Values{
		"LinodeID": {strconv.Itoa(linodeID)},
		"Label":    {label},
		"Type":     {fsType},
		"Size":     {strconv.Itoa(sizeMB)},
	})
	if err != nil {
		return 0, err
	}
	return idFromData("linode.disk.create", data, "DiskID")
}

// ListDiskIDs returns the IDs of all disks on the Linode in creation order.
// The API does not document its ordering; disk IDs are assigned
// monotonically, so ascending ID order is creation order.
func (c *RealClient) ListDiskIDs(ctx context.Context, linodeID int) ([]int, error) {
	data, err := c.invoke(ctx, "linode.disk.list", url.Values{
		"LinodeID": {strconv.Itoa(linodeID)},
	})
	if err != nil {
		return nil, err
	}

	var entries []struct {
		DiskID int `json:"DISKID"`
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode linode.disk.list data: %w", err)
	}

	ids := make([]int, 0, len(entries))
	for _, e := range entries {
		if e.DiskID == 0 {
			return nil, fmt.Errorf("linode.disk.list: DISKID: %w", ErrMissingField)
		}
		ids = append(ids, e.DiskID)
	}
	sort.Ints(ids)
	return ids, nil
}

// CreateConfig creates a boot configuration referencing the given disks.
func (c *RealClient) CreateConfig(ctx context.Context, linodeID, kernelID int, label string, diskIDs []int, rootDeviceNum int) (int, error) {
	diskList := make([]string, len(diskIDs))
	for i, id := range diskIDs {
		diskList[i] = strconv.Itoa(id)
	}
	data, err := c.invoke(ctx, "linode.config.create", url.Values{
		"LinodeID":      {strconv.Itoa(linodeID)},
		"KernelID":      {strconv.Itoa(kernelID)},
		"Label":         {label},
		"DiskList":      {strings.Join(diskList, ",")},
		"RootDeviceNum": {strconv.Itoa(rootDeviceNum)},
	})
	if err != nil {
		return 0, err
	}
	return idFromData("linode.config.create", data, "ConfigID")
}

// Boot queues a boot job into the given configuration.
func (c *RealClient) Boot(ctx context.Context, linodeID, configID int) error {
	_, err := c.invoke(ctx, "linode.boot", url.Values{
		"LinodeID": {strconv.Itoa(linodeID)},
		"ConfigID": {strconv.Itoa(configID)},
	})
	return err
}

// Shutdown queues a shutdown job.
func (c *RealClient) Shutdown(ctx context.Context, linodeID int) error {
	_, err := c.invoke(ctx, "linode.shutdown", url.Values{
		"LinodeID": {strconv.Itoa(linodeID)},
	})
	return err
}

// ListPlans returns all available plans.
func (c *RealClient) ListPlans(ctx context.Context) ([]Plan, error) {
	data, err := c.invoke(ctx, "avail.linodeplans", nil)
	if err != nil {
		return nil, err
	}

	var entries []struct {
		PlanID int     `json:"PLANID"`
		Label  string  `json:"LABEL"`
		RAM    int     `json:"RAM"`
		Disk   int     `json:"DISK"`
		Hourly float64 `json:"HOURLY"`
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode avail.linodeplans data: %w", err)
	}

	plans := make([]Plan, 0, len(entries))
	for _, e := range entries {
		plans = append(plans, Plan{
			ID:     e.PlanID,
			Label:  e.Label,
			RAMMB:  e.RAM,
			DiskGB: e.Disk,
			Hourly: e.Hourly,
		})
	}
	return plans, nil
}

// ListDatacenters returns all available datacenters.
func (c *RealClient) ListDatacenters(ctx context.Context) ([]Datacenter, error) {
	data, err := c.invoke(ctx, "avail.datacenters", nil)
	if err != nil {
		return nil, err
	}

	var entries []struct {
		DatacenterID int    `json:"DATACENTERID"`
		Location     string `json:"LOCATION"`
		Abbr         string `json:"ABBR"`
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode avail.datacenters data: %w", err)
	}

	dcs := make([]Datacenter, 0, len(entries))
	for _, e := range entries {
		dcs = append(dcs, Datacenter{
			ID:           e.DatacenterID,
			Location:     e.Location,
			Abbreviation: e.Abbr,
		})
	}
	return dcs, nil
}

// Ensure interface compliance.
var _ Client = (*RealClient)(nil)

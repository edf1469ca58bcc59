package linode

import (
	"context"
)

// MockClient is a mock implementation of Client for tests.
// Each method delegates to the corresponding Func field when set and
// otherwise returns a benign default.
type MockClient struct {
	CreateLinodeFunc               func(ctx context.Context, datacenterID, planID int) (int, error)
	RenameLinodeFunc               func(ctx context.Context, linodeID int, label string) error
	AddPrivateIPFunc               func(ctx context.Context, linodeID int) error
	ListIPsFunc                    func(ctx context.Context, linodeID int) ([]IP, error)
	TotalDiskMBFunc                func(ctx context.Context, linodeID int) (int, error)
	CreateDiskFromDistributionFunc func(ctx context.Context, linodeID, distributionID int, label string, sizeMB int, rootPass string) (int, error)
	CreateDiskFunc                 func(ctx context.Context, linodeID int, label, fsType string, sizeMB int) (int, error)
	ListDiskIDsFunc                func(ctx context.Context, linodeID int) ([]int, error)
	CreateConfigFunc               func(ctx context.Context, linodeID, kernelID int, label string, diskIDs []int, rootDeviceNum int) (int, error)
	BootFunc                       func(ctx context.Context, linodeID, configID int) error
	ShutdownFunc                   func(ctx context.Context, linodeID int) error
	ListPlansFunc                  func(ctx context.Context) ([]Plan, error)
	ListDatacentersFunc            func(ctx context.Context) ([]Datacenter, error)
}

// Ensure interface compliance.
var _ Client = (*MockClient)(nil)

// CreateLinode mocks Linode creation.
func (m *MockClient) CreateLinode(ctx context.Context, datacenterID, planID int) (int, error) {
	if m.CreateLinodeFunc != nil {
		return m.CreateLinodeFunc(ctx, datacenterID, planID)
	}
	return 1234, nil
}

// RenameLinode mocks setting the label.
func (m *MockClient) RenameLinode(ctx context.Context, linodeID int, label string) error {
	if m.RenameLinodeFunc != nil {
		return m.RenameLinodeFunc(ctx, linodeID, label)
	}
	return nil
}

// AddPrivateIP mocks private address allocation.
func (m *MockClient) AddPrivateIP(ctx context.Context, linodeID int) error {
	if m.AddPrivateIPFunc != nil {
		return m.AddPrivateIPFunc(ctx, linodeID)
	}
	return nil
}

// ListIPs mocks address listing.
func (m *MockClient) ListIPs(ctx context.Context, linodeID int) ([]IP, error) {
	if m.ListIPsFunc != nil {
		return m.ListIPsFunc(ctx, linodeID)
	}
	return []IP{
		{Address: "203.0.113.10", IsPublic: true},
		{Address: "192.168.133.5", IsPublic: false},
	}, nil
}

// TotalDiskMB mocks capacity lookup.
func (m *MockClient) TotalDiskMB(ctx context.Context, linodeID int) (int, error) {
	if m.TotalDiskMBFunc != nil {
		return m.TotalDiskMBFunc(ctx, linodeID)
	}
	return 24576, nil
}

// CreateDiskFromDistribution mocks distribution disk creation.
func (m *MockClient) CreateDiskFromDistribution(ctx context.Context, linodeID, distributionID int, label string, sizeMB int, rootPass string) (int, error) {
	if m.CreateDiskFromDistributionFunc != nil {
		return m.CreateDiskFromDistributionFunc(ctx, linodeID, distributionID, label, sizeMB, rootPass)
	}
	return 5501, nil
}

// CreateDisk mocks empty disk creation.
func (m *MockClient) CreateDisk(ctx context.Context, linodeID int, label, fsType string, sizeMB int) (int, error) {
	if m.CreateDiskFunc != nil {
		return m.CreateDiskFunc(ctx, linodeID, label, fsType, sizeMB)
	}
	return 5502, nil
}

// ListDiskIDs mocks disk listing.
func (m *MockClient) ListDiskIDs(ctx context.Context, linodeID int) ([]int, error) {
	if m.ListDiskIDsFunc != nil {
		return m.ListDiskIDsFunc(ctx, linodeID)
	}
	return []int{5501, 5502}, nil
}

// CreateConfig mocks boot config creation.
func (m *MockClient) CreateConfig(ctx context.Context, linodeID, kernelID int, label string, diskIDs []int, rootDeviceNum int) (int, error) {
	if m.CreateConfigFunc != nil {
		return m.CreateConfigFunc(ctx, linodeID, kernelID, label, diskIDs, rootDeviceNum)
	}
	return 9901, nil
}

// Boot mocks queuing a boot job.
func (m *MockClient) Boot(ctx context.Context, linodeID, configID int) error {
	if m.BootFunc != nil {
		return m.BootFunc(ctx, linodeID, configID)
	}
	return nil
}

// Shutdown mocks queuing a shutdown job.
func (m *MockClient) Shutdown(ctx context.Context, linodeID int) error {
	if m.ShutdownFunc != nil {
		return m.ShutdownFunc(ctx, linodeID)
	}
	return nil
}

// ListPlans mocks plan listing.
func (m *MockClient) ListPlans(ctx context.Context) ([]Plan, error) {
	if m.ListPlansFunc != nil {
		return m.ListPlansFunc(ctx)
	}
	return []Plan{{ID: 1, Label: "Linode 1024", RAMMB: 1024, DiskGB: 24, Hourly: 0.015}}, nil
}

// ListDatacenters mocks datacenter listing.
func (m *MockClient) ListDatacenters(ctx context.Context) ([]Datacenter, error) {
	if m.ListDatacentersFunc != nil {
		return m.ListDatacentersFunc(ctx)
	}
	return []Datacenter{{ID: 2, Location: "Dallas, TX, USA", Abbreviation: "dallas"}}, nil
}

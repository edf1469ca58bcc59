// Package provisioning drives a Linode from nothing to a booted CoreOS.
//
// A run is a fixed sequence of phases executed strictly in order, each
// consuming the results of earlier phases through a shared State: create the
// Linode, resolve its addresses, plan and create its disks, create the two
// boot configs, boot the staging OS, wait for SSH, push the cloud-config,
// run the installer, and reboot into the target config. The first failing
// phase aborts the run; resources created so far are reported, never rolled
// back.
package provisioning

// Package model defines the shared record and result types used across blobvec.
package model

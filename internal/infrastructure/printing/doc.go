// Package printing implements the print pipeline: compiling stored HTML
// templates against business data, generating page-geometry CSS for label
// and receipt media, and driving a headless-Chrome print surface.
//
// The pipeline is strictly sequential per invocation: fetch template →
// compile body → resolve geometry → open surface → write document →
// trigger print. Every failure before the surface is opened aborts the
// whole print, so a partially rendered document is never shown.
package printing

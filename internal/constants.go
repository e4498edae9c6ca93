/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	UserAgent    = "cara/0.1.0 (+https://github.com/carachess/cara)"
	CacheDirName = "cara-webcache"
)

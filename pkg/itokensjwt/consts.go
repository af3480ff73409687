/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package itokensjwt

// SecretKeyLength is the minimal accepted HMAC key length
const SecretKeyLength = 64

const audiencePrincipal = "aclman.PrincipalPayload"

// SecretKeyExample is for tests and examples only, never use it in production
var SecretKeyExample = SecretKeyType("iIiOLFjrPAQkrPNzvzrYrkEgycpTBdHCfbPlSrdCDmUtBNRaiTmhkyWbvmaUUamn")

// Package authenticator exposes the operations a front end needs to show TOTP codes
// for a single shared secret.
//
//	store := secretstore.New(secretstore.NewFileBackend("secret"))
//	auth, err := authenticator.Open(ctx, store)
//	if err != nil {
//	    return err
//	}
//
//	code, valid := auth.Code()
//	uri := auth.ProvisioningURI("OTP-Server", "OTP-Server")
//	time.Sleep(auth.NextRefresh())
//
// Open calls LoadOrCreateSecret once. After that the secret only changes through
// RotateSecret or another LoadOrCreateSecret. CurrentCode, ProvisioningURI and
// TimeRemaining are pure computations over the bound secret and their arguments.
package authenticator

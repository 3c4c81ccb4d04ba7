// Copyright © 2018 One Concern

package cmd

import (
	"context"

	"github.com/oneconcern/playpub/pkg/auth"
	"github.com/oneconcern/playpub/pkg/auth/google"
	"github.com/oneconcern/playpub/pkg/publisher"
	"github.com/oneconcern/playpub/pkg/publisher/googleplay"
	"github.com/oneconcern/playpub/pkg/storage"
	"go.uber.org/zap"
	"google.golang.org/api/androidpublisher/v3"
	"google.golang.org/api/option"
)

var (
	// used to patch over calls to Authable.Credentials() during test
	authorizer auth.Authable = google.New()

	// used to patch over the remote publisher during test
	newPublisherClient = defaultPublisherClient
)

// defaultPublisherClient builds a Google Play client authenticated with the service account key
// at the credential location, or with the application default credentials when none is given.
func defaultPublisherClient(ctx context.Context, in *cliOptionInputs) (publisher.Client, error) {
	packageName, err := in.packageName()
	if err != nil {
		return nil, err
	}
	logger, err := in.getLogger()
	if err != nil {
		return nil, err
	}

	clientOpts := []option.ClientOption{option.WithScopes(androidpublisher.AndroidpublisherScope)}
	if location := in.params.root.credential; location != "" {
		key, erk := storage.ReadAll(ctx, in.sourceStore(), location)
		if erk != nil {
			return nil, erk
		}
		if principal, erp := authorizer.Principal(key); erp == nil {
			logger.Info("using service account", zap.String("principal", principal))
		}
		creds, erc := authorizer.Credentials(ctx, key)
		if erc != nil {
			return nil, erc
		}
		clientOpts = append(clientOpts, option.WithCredentials(creds))
	}

	return googleplay.New(ctx, packageName,
		googleplay.Logger(logger),
		googleplay.ClientOptions(clientOpts...),
	)
}
